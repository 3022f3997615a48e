package dimension

import (
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
)

// User is the employee dimension as exposed by the API.
type User struct {
	Matricula string  `json:"matricula"`
	Nome      string  `json:"nome"`
	Email     *string `json:"email,omitempty"`
	Funcao    *string `json:"funcao,omitempty"`
	UOCodigo  *string `json:"uo_codigo,omitempty"`
}

// Lookup is the shared shape of the code/description dimensions
// (organizational units, activity locations, work regimes, request types).
type Lookup struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

type Cargo struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type Risco struct {
	ID           int64  `json:"id"`
	Codigo       string `json:"codigo"`
	Categoria    string `json:"categoria"`
	Subcategoria string `json:"subcategoria"`
	Descricao    string `json:"descricao"`
}

func UserToDataModel(u *User) *dimDatamodel.User {
	return &dimDatamodel.User{
		Matricula: u.Matricula,
		Nome:      u.Nome,
		Email:     u.Email,
		Funcao:    u.Funcao,
		UOCodigo:  u.UOCodigo,
	}
}

func UserFromDataModel(u *dimDatamodel.User) *User {
	return &User{
		Matricula: u.Matricula,
		Nome:      u.Nome,
		Email:     u.Email,
		Funcao:    u.Funcao,
		UOCodigo:  u.UOCodigo,
	}
}

func CargoToDataModel(c *Cargo) *dimDatamodel.Cargo {
	return &dimDatamodel.Cargo{ID: c.ID, Nome: c.Nome}
}

func CargoFromDataModel(c *dimDatamodel.Cargo) *Cargo {
	return &Cargo{ID: c.ID, Nome: c.Nome}
}

func RiscoToDataModel(r *Risco) *dimDatamodel.Risco {
	return &dimDatamodel.Risco{
		ID:           r.ID,
		Codigo:       r.Codigo,
		Categoria:    r.Categoria,
		Subcategoria: r.Subcategoria,
		Descricao:    r.Descricao,
	}
}

func RiscoFromDataModel(r *dimDatamodel.Risco) *Risco {
	return &Risco{
		ID:           r.ID,
		Codigo:       r.Codigo,
		Categoria:    r.Categoria,
		Subcategoria: r.Subcategoria,
		Descricao:    r.Descricao,
	}
}
