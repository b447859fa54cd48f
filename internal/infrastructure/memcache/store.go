// Package memcache implementa la caché de lectura en memoria: un Store con
// TTL por entrada y decoradores de repositorio para los cuatro caminos de
// lectura calientes. Sin límite de tamaño ni LRU: los conteos de entidades
// son pequeños y el despliegue es single-tenant; la única expulsión es el
// TTL y la invalidación total en cada escritura.
package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/kantin-api/internal/application/ports"
)

// TTL por camino de lectura.
const (
	TTLStaff        = 600 * time.Second
	TTLTransactions = 300 * time.Second
	TTLDepartments  = 3600 * time.Second
	TTLMenu         = 60 * time.Second
)

var _ ports.Store = (*Store)(nil)

// Store caché en memoria compartida por todos los decoradores. Flush la
// barre completa, sin importar qué entidad tocó la escritura.
type Store struct {
	c *gocache.Cache
}

// NewStore construye el store. La limpieza de entradas expiradas corre cada
// 5 minutos; la corrección no depende de ella (Get ya ignora lo expirado).
func NewStore() *Store {
	return &Store{c: gocache.New(gocache.NoExpiration, 5*time.Minute)}
}

func (s *Store) Get(key string) (any, bool) {
	return s.c.Get(key)
}

func (s *Store) Set(key string, value any, ttl time.Duration) {
	s.c.Set(key, value, ttl)
}

func (s *Store) Flush() {
	s.c.Flush()
}
