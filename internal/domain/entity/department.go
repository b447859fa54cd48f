package entity

// Department agrupa al personal por área. Se crea explícitamente o de forma
// implícita durante el import masivo de staff; nunca se borra en cascada.
type Department struct {
	ID   int64
	Name string // único
}
