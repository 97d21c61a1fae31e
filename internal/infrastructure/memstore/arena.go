// Package memstore implementa los puertos de persistencia sobre memoria:
// una arena indexada por tipo de entidad (clave entera estable, contador
// monotónico, crecimiento solo por inserción). El borrado quita el
// registro del índice pero nunca retrocede el contador, así que los ids
// no se reutilizan. Cada colección lleva su propio RWMutex: los mapas de
// Go no toleran mutación concurrente, y el servidor HTTP atiende
// peticiones en paralelo.
//
// No hay transacciones entre colecciones; la única escritura compuesta
// (orden + líneas) se valida por completo antes de tocar la arena.
package memstore

import "sync"

// arena colección en memoria de registros de tipo T con ids asignados por
// un contador monotónico que arranca en 1.
type arena[T any] struct {
	mu     sync.RWMutex
	recs   map[int64]T
	ids    []int64 // orden de inserción, para listados deterministas
	nextID int64
}

func newArena[T any]() *arena[T] {
	return &arena[T]{recs: make(map[int64]T), nextID: 1}
}

// create asigna el siguiente id, construye el registro con fill(id) y lo
// guarda. Devuelve el id asignado.
func (a *arena[T]) create(fill func(id int64) T) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.insertLocked(fill)
}

// insertLocked inserta sin tomar el lock; para escrituras compuestas.
func (a *arena[T]) insertLocked(fill func(id int64) T) int64 {
	id := a.nextID
	a.nextID++
	a.recs[id] = fill(id)
	a.ids = append(a.ids, id)
	return id
}

// get devuelve una copia del registro y si existe.
func (a *arena[T]) get(id int64) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rec, ok := a.recs[id]
	return rec, ok
}

// put reemplaza el registro completo; false si el id no existe.
func (a *arena[T]) put(id int64, rec T) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.recs[id]; !ok {
		return false
	}
	a.recs[id] = rec
	return true
}

// delete quita el registro del índice; false si no existía. El contador
// no retrocede: el id queda como lápida implícita.
func (a *arena[T]) delete(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.recs[id]; !ok {
		return false
	}
	delete(a.recs, id)
	return true
}

// list devuelve copias de los registros que cumplen keep (nil = todos),
// en orden de inserción.
func (a *arena[T]) list(keep func(T) bool) []T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]T, 0, len(a.recs))
	for _, id := range a.ids {
		rec, ok := a.recs[id]
		if !ok {
			continue // borrado
		}
		if keep == nil || keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// find devuelve el primer registro que cumple match, en orden de inserción.
func (a *arena[T]) find(match func(T) bool) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, id := range a.ids {
		rec, ok := a.recs[id]
		if ok && match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
