package dimension

import (
	"log/slog"

	"github.com/lmoreira/requerimento-service/internal"
	dimDatamodel "github.com/lmoreira/requerimento-service/internal/core/datamodel/dimension"
)

type UserRepositoryAPI interface {
	GetAll() ([]*dimDatamodel.User, error)
	GetByMatricula(matricula string) (*dimDatamodel.User, error)
	Create(user *dimDatamodel.User) error
	Update(user *dimDatamodel.User) error
	Delete(matricula string) error
}

// LookupRepositoryAPI serves one code/description dimension table.
type LookupRepositoryAPI interface {
	GetAll() ([]*Lookup, error)
	GetByCodigo(codigo string) (*Lookup, error)
	Create(row *Lookup) error
	Update(row *Lookup) error
	Delete(codigo string) error
}

type CargoRepositoryAPI interface {
	GetAll() ([]*dimDatamodel.Cargo, error)
	GetByID(id int64) (*dimDatamodel.Cargo, error)
	Create(cargo *dimDatamodel.Cargo) error
	Update(cargo *dimDatamodel.Cargo) error
	Delete(id int64) error
}

type RiscoRepositoryAPI interface {
	GetAll() ([]*dimDatamodel.Risco, error)
	GetByID(id int64) (*dimDatamodel.Risco, error)
	Create(risco *dimDatamodel.Risco) error
	Update(risco *dimDatamodel.Risco) error
	Delete(id int64) error
}

// ---------------------------------------------------------------- users

type UserService struct {
	repo   UserRepositoryAPI
	uos    LookupRepositoryAPI
	logger *slog.Logger
}

func NewUserService(repo UserRepositoryAPI, uos LookupRepositoryAPI, logger *slog.Logger) *UserService {
	return &UserService{repo: repo, uos: uos, logger: logger}
}

// resolveUO checks that a referenced organizational unit exists before the
// write reaches the database, so a bad code surfaces as a field-level
// validation error instead of a constraint failure.
func (s *UserService) resolveUO(codigo *string) error {
	if codigo == nil {
		return nil
	}
	if _, err := s.uos.GetByCodigo(*codigo); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			return internal.NewReferentialViolationError("uo_codigo", *codigo)
		}
		return err
	}
	return nil
}

func (s *UserService) GetAll() ([]*User, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	users := make([]*User, len(rows))
	for i, row := range rows {
		users[i] = UserFromDataModel(row)
	}
	return users, nil
}

func (s *UserService) GetByMatricula(matricula string) (*User, error) {
	row, err := s.repo.GetByMatricula(matricula)
	if err != nil {
		return nil, err
	}
	return UserFromDataModel(row), nil
}

func (s *UserService) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if err := s.resolveUO(dto.UOCodigo); err != nil {
		return nil, err
	}

	user := &User{
		Matricula: dto.Matricula,
		Nome:      dto.Nome,
		Email:     dto.Email,
		Funcao:    dto.Funcao,
		UOCodigo:  dto.UOCodigo,
	}
	if err := s.repo.Create(UserToDataModel(user)); err != nil {
		s.logger.Error("failed to create user", "matricula", dto.Matricula, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(matricula string, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByMatricula(matricula); err != nil {
		return nil, err
	}
	if err := s.resolveUO(dto.UOCodigo); err != nil {
		return nil, err
	}

	user := &User{
		Matricula: matricula,
		Nome:      dto.Nome,
		Email:     dto.Email,
		Funcao:    dto.Funcao,
		UOCodigo:  dto.UOCodigo,
	}
	if err := s.repo.Update(UserToDataModel(user)); err != nil {
		s.logger.Error("failed to update user", "matricula", matricula, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *UserService) Patch(matricula string, dto PatchUserDTO) (*User, error) {
	row, err := s.repo.GetByMatricula(matricula)
	if err != nil {
		return nil, err
	}

	user := UserFromDataModel(row)
	if dto.Nome != nil {
		if *dto.Nome == "" {
			return nil, internal.NewValidationError("nome cannot be empty", internal.ErrCodeValidationFailed)
		}
		user.Nome = *dto.Nome
	}
	if dto.Email != nil {
		user.Email = dto.Email
	}
	if dto.Funcao != nil {
		user.Funcao = dto.Funcao
	}
	if dto.UOCodigo != nil {
		if err := s.resolveUO(dto.UOCodigo); err != nil {
			return nil, err
		}
		user.UOCodigo = dto.UOCodigo
	}

	if err := s.repo.Update(UserToDataModel(user)); err != nil {
		s.logger.Error("failed to patch user", "matricula", matricula, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(matricula string) error {
	if _, err := s.repo.GetByMatricula(matricula); err != nil {
		return err
	}
	if err := s.repo.Delete(matricula); err != nil {
		s.logger.Error("failed to delete user", "matricula", matricula, "error", err)
		return err
	}
	return nil
}

// ---------------------------------------------------------------- lookups

// LookupService handles one of the pure code/description dimensions. The
// resource name only feeds error messages and logs.
type LookupService struct {
	resource string
	repo     LookupRepositoryAPI
	logger   *slog.Logger
}

func NewLookupService(resource string, repo LookupRepositoryAPI, logger *slog.Logger) *LookupService {
	return &LookupService{resource: resource, repo: repo, logger: logger}
}

func (s *LookupService) GetAll() ([]*Lookup, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list dimension", "resource", s.resource, "error", err)
		return nil, err
	}
	return rows, nil
}

func (s *LookupService) GetByCodigo(codigo string) (*Lookup, error) {
	return s.repo.GetByCodigo(codigo)
}

func (s *LookupService) Create(dto LookupDTO) (*Lookup, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	row := &Lookup{Codigo: dto.Codigo, Descricao: dto.Descricao}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create dimension row", "resource", s.resource, "codigo", dto.Codigo, "error", err)
		return nil, err
	}
	return row, nil
}

func (s *LookupService) Update(codigo string, dto UpdateLookupDTO) (*Lookup, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByCodigo(codigo); err != nil {
		return nil, err
	}

	row := &Lookup{Codigo: codigo, Descricao: dto.Descricao}
	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update dimension row", "resource", s.resource, "codigo", codigo, "error", err)
		return nil, err
	}
	return row, nil
}

func (s *LookupService) Delete(codigo string) error {
	if _, err := s.repo.GetByCodigo(codigo); err != nil {
		return err
	}
	if err := s.repo.Delete(codigo); err != nil {
		s.logger.Error("failed to delete dimension row", "resource", s.resource, "codigo", codigo, "error", err)
		return err
	}
	return nil
}

// ---------------------------------------------------------------- cargos

type CargoService struct {
	repo   CargoRepositoryAPI
	logger *slog.Logger
}

func NewCargoService(repo CargoRepositoryAPI, logger *slog.Logger) *CargoService {
	return &CargoService{repo: repo, logger: logger}
}

func (s *CargoService) GetAll() ([]*Cargo, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list cargos", "error", err)
		return nil, err
	}
	cargos := make([]*Cargo, len(rows))
	for i, row := range rows {
		cargos[i] = CargoFromDataModel(row)
	}
	return cargos, nil
}

func (s *CargoService) GetByID(id int64) (*Cargo, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return CargoFromDataModel(row), nil
}

func (s *CargoService) Create(dto CargoDTO) (*Cargo, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	row := &dimDatamodel.Cargo{Nome: dto.Nome}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create cargo", "nome", dto.Nome, "error", err)
		return nil, err
	}
	return CargoFromDataModel(row), nil
}

func (s *CargoService) Update(id int64, dto CargoDTO) (*Cargo, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	row := &dimDatamodel.Cargo{ID: id, Nome: dto.Nome}
	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update cargo", "id", id, "error", err)
		return nil, err
	}
	return CargoFromDataModel(row), nil
}

func (s *CargoService) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ---------------------------------------------------------------- riscos

type RiscoService struct {
	repo   RiscoRepositoryAPI
	logger *slog.Logger
}

func NewRiscoService(repo RiscoRepositoryAPI, logger *slog.Logger) *RiscoService {
	return &RiscoService{repo: repo, logger: logger}
}

func (s *RiscoService) GetAll() ([]*Risco, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list riscos", "error", err)
		return nil, err
	}
	riscos := make([]*Risco, len(rows))
	for i, row := range rows {
		riscos[i] = RiscoFromDataModel(row)
	}
	return riscos, nil
}

func (s *RiscoService) GetByID(id int64) (*Risco, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return RiscoFromDataModel(row), nil
}

func (s *RiscoService) Create(dto CreateRiscoDTO) (*Risco, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	row := &dimDatamodel.Risco{
		Codigo:       dto.Codigo,
		Categoria:    dto.Categoria,
		Subcategoria: dto.Subcategoria,
		Descricao:    dto.Descricao,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create risco", "codigo", dto.Codigo, "error", err)
		return nil, err
	}
	return RiscoFromDataModel(row), nil
}

func (s *RiscoService) Update(id int64, dto CreateRiscoDTO) (*Risco, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	row := &dimDatamodel.Risco{
		ID:           id,
		Codigo:       dto.Codigo,
		Categoria:    dto.Categoria,
		Subcategoria: dto.Subcategoria,
		Descricao:    dto.Descricao,
	}
	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update risco", "id", id, "error", err)
		return nil, err
	}
	return RiscoFromDataModel(row), nil
}

func (s *RiscoService) Patch(id int64, dto PatchRiscoDTO) (*Risco, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Codigo != nil {
		row.Codigo = *dto.Codigo
	}
	if dto.Categoria != nil {
		row.Categoria = *dto.Categoria
	}
	if dto.Subcategoria != nil {
		row.Subcategoria = *dto.Subcategoria
	}
	if dto.Descricao != nil {
		row.Descricao = *dto.Descricao
	}
	if row.Codigo == "" || row.Subcategoria == "" || row.Descricao == "" {
		return nil, internal.NewValidationError("codigo, subcategoria and descricao cannot be empty", internal.ErrCodeValidationFailed)
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to patch risco", "id", id, "error", err)
		return nil, err
	}
	return RiscoFromDataModel(row), nil
}

func (s *RiscoService) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
