package domain

// Product es un producto del menú tal como lo sirve el catálogo.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Imagen      string  `json:"imagen,omitempty"`
}

const PlaceholderImage = "placeholder.jpg"
