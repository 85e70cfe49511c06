package event

import "testing"

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(ScoreChanged, a)
	d.Subscribe(ScoreChanged, b)
	d.Subscribe(HpChanged, b)

	d.Dispatch(Event{Type: ScoreChanged, Data: 10})
	d.Dispatch(Event{Type: HpChanged, Data: 2})
	d.Dispatch(Event{Type: BombChanged})

	if a.n != 1 || b.n != 2 {
		t.Errorf("a=%d b=%d, want 1 2", a.n, b.n)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &counter{}
	d.Subscribe(GameOver, a)
	d.Unsubscribe(GameOver, a)
	d.Dispatch(Event{Type: GameOver})
	if a.n != 0 {
		t.Errorf("unsubscribed listener called %d times", a.n)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []interface{}
	fn := ListenerFunc(func(e Event) { got = append(got, e.Data) })
	d.Subscribe(BombUsed, fn)

	d.Dispatch(Event{Type: BombUsed, Data: 4})
	// Функции отписать нельзя, вызов не должен паниковать
	d.Unsubscribe(BombUsed, fn)
	d.Dispatch(Event{Type: BombUsed, Data: 5})

	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Errorf("got %v, want [4 5]", got)
	}
}
