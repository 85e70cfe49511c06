// Package pool переиспользует объекты вместо того, чтобы создавать их заново.
package pool

// Pool - стек свободных объектов одного вида.
// Объект, выданный Get, не находится в пуле, пока его не вернут через Put.
type Pool[T comparable] struct {
	free    []T
	inPool  map[T]struct{}
	newFn   func() T
	reset   func(T)
	created int
}

// New создаёт пул. reset вызывается при возврате объекта и может быть nil.
func New[T comparable](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		inPool: make(map[T]struct{}),
		newFn:  newFn,
		reset:  reset,
	}
}

// Prewarm заранее создаёт n объектов.
func (p *Pool[T]) Prewarm(n int) {
	for i := 0; i < n; i++ {
		p.Put(p.create())
	}
}

// Get возвращает свободный объект или создаёт новый, если пул пуст.
func (p *Pool[T]) Get() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		delete(p.inPool, v)
		return v
	}
	return p.create()
}

// Put возвращает объект в пул. Повторный возврат того же объекта
// игнорируется и возвращает false.
func (p *Pool[T]) Put(v T) bool {
	if _, dup := p.inPool[v]; dup {
		return false
	}
	if p.reset != nil {
		p.reset(v)
	}
	p.inPool[v] = struct{}{}
	p.free = append(p.free, v)
	return true
}

// Contains сообщает, лежит ли объект сейчас в пуле.
func (p *Pool[T]) Contains(v T) bool {
	_, ok := p.inPool[v]
	return ok
}

// Len - число свободных объектов.
func (p *Pool[T]) Len() int { return len(p.free) }

// Created - сколько объектов пул создал за всё время.
func (p *Pool[T]) Created() int { return p.created }

// Clear выбрасывает все свободные объекты.
func (p *Pool[T]) Clear() {
	clear(p.free)
	p.free = p.free[:0]
	clear(p.inPool)
}

func (p *Pool[T]) create() T {
	p.created++
	return p.newFn()
}

// Keyed держит отдельный пул на каждый ключ, например на вариант пули.
type Keyed[K comparable, T comparable] struct {
	pools map[K]*Pool[T]
	newFn func(K) T
	reset func(T)
}

// NewKeyed создаёт набор пулов. Пул для ключа создаётся при первом обращении.
func NewKeyed[K comparable, T comparable](newFn func(K) T, reset func(T)) *Keyed[K, T] {
	return &Keyed[K, T]{
		pools: make(map[K]*Pool[T]),
		newFn: newFn,
		reset: reset,
	}
}

// Pool возвращает пул для ключа.
func (k *Keyed[K, T]) Pool(key K) *Pool[T] {
	p, ok := k.pools[key]
	if !ok {
		p = New(func() T { return k.newFn(key) }, k.reset)
		k.pools[key] = p
	}
	return p
}

func (k *Keyed[K, T]) Get(key K) T { return k.Pool(key).Get() }

func (k *Keyed[K, T]) Put(key K, v T) bool { return k.Pool(key).Put(v) }

func (k *Keyed[K, T]) Len(key K) int { return k.Pool(key).Len() }

func (k *Keyed[K, T]) Prewarm(key K, n int) { k.Pool(key).Prewarm(n) }

// Clear очищает все пулы.
func (k *Keyed[K, T]) Clear() {
	for _, p := range k.pools {
		p.Clear()
	}
}
