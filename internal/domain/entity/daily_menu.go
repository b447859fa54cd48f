package entity

// DailyMenu es el menú único de un día calendario. Clave por fecha con
// semántica de upsert: un guardado posterior para la misma fecha reemplaza
// al anterior sin conservar historial.
type DailyMenu struct {
	ID       int64
	Date     string // YYYY-MM-DD
	MenuName string
	Price    int64 // unidad monetaria mínima, no negativo
}
