package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chapter is one entry of a book's ordered chapter list.
type Chapter struct {
	Numero    int    `bson:"numero" json:"numero"`
	Titulo    string `bson:"titulo" json:"titulo"`
	Contenido string `bson:"contenido" json:"contenido"`
}

// Book represents a cataloged book. Titles are not unique: the store accepts
// duplicates, so field searches may return more than one match.
type Book struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Titulo         string             `bson:"titulo" json:"titulo"`
	Autor          string             `bson:"autor" json:"autor"`
	Descripcion    string             `bson:"descripcion" json:"descripcion"`
	Genero         string             `bson:"genero" json:"genero"`
	Idioma         string             `bson:"idioma,omitempty" json:"idioma,omitempty"`
	AnoPublicacion int                `bson:"anoPublicacion,omitempty" json:"anoPublicacion,omitempty"`
	PortadaJSON    string             `bson:"portadaJSON,omitempty" json:"portadaJSON,omitempty"`
	ArchivoJSON    string             `bson:"archivoJSON,omitempty" json:"archivoJSON,omitempty"`
	Capitulos      []Chapter          `bson:"capitulos,omitempty" json:"capitulos,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the fields required at creation time.
func (b *Book) Validate() error {
	switch {
	case b.Titulo == "":
		return &ValidationError{Field: "titulo", Message: "es obligatorio"}
	case b.Autor == "":
		return &ValidationError{Field: "autor", Message: "es obligatorio"}
	case b.Descripcion == "":
		return &ValidationError{Field: "descripcion", Message: "es obligatorio"}
	case b.Genero == "":
		return &ValidationError{Field: "genero", Message: "es obligatorio"}
	}
	return nil
}

// BookFields is the allow-list of searchable book fields. Field names arrive
// verbatim from the request path and must resolve through this schema before
// they reach the store.
var BookFields = FieldSet{
	"titulo":         {Column: "titulo"},
	"autor":          {Column: "autor"},
	"descripcion":    {Column: "descripcion"},
	"genero":         {Column: "genero"},
	"idioma":         {Column: "idioma"},
	"anoPublicacion": {Column: "anoPublicacion", Parse: ParseIntField},
}

// BookUpdateFields is the allow-list applied to update bodies. It extends the
// searchable set with fields that can be written but not queried.
var BookUpdateFields = merged(BookFields, FieldSet{
	"portadaJSON": {Column: "portadaJSON"},
	"archivoJSON": {Column: "archivoJSON"},
	"capitulos":   {Column: "capitulos"},
})
