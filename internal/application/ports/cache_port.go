package ports

import "time"

// Store capacidad de caché de lectura con TTL. Cada consulta caliente se
// direcciona por la tupla completa de sus parámetros serializada en la clave;
// la invalidación es siempre total (Flush), nunca por entrada: cualquier
// escritura en el sistema barre la caché completa antes de que el llamador
// continúe, así una lectura posterior nunca ve estado previo a la escritura.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Flush()
}

// Invalidator capacidad de solo-invalidación para los caminos de escritura
// que operan con repos desnudos dentro de una transacción (el decorador de
// caché no los ve pasar).
type Invalidator interface {
	Flush()
}

// Through lectura read-through: devuelve el valor cacheado bajo key o lo
// computa, lo guarda con el TTL dado y lo devuelve. El valor se guarda por
// copia (T es un valor, no un alias al estado mutable del store).
func Through[T any](s Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	s.Set(key, value, ttl)
	return value, nil
}
