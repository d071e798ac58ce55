package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gbsalud/gbs-inventario/internal/apiserver/database"
)

// mockDB is an in-memory Database used by the handler tests.
type mockDB struct {
	nextID     uint
	usuarios   map[uint]*database.Usuario
	clinicas   []*database.Clinica
	equipos    map[uint]*database.EquipoBiomedico
	documentos map[uint]*database.DocumentoAdjunto
	historial  []*database.HistorialCambios
}

func newMockDB() *mockDB {
	return &mockDB{
		usuarios:   make(map[uint]*database.Usuario),
		equipos:    make(map[uint]*database.EquipoBiomedico),
		documentos: make(map[uint]*database.DocumentoAdjunto),
	}
}

func (m *mockDB) id() uint {
	m.nextID++
	return m.nextID
}

func (m *mockDB) Close() error { return nil }

func (m *mockDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockDB) CreateUsuario(ctx context.Context, u *database.Usuario) error {
	u.ID = m.id()
	m.usuarios[u.ID] = u
	return nil
}

func (m *mockDB) GetUsuarioByEmail(ctx context.Context, email string) (*database.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDB) GetUsuarioByID(ctx context.Context, id uint) (*database.Usuario, error) {
	u, ok := m.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockDB) CreateClinica(ctx context.Context, c *database.Clinica) error {
	c.ID = m.id()
	m.clinicas = append(m.clinicas, c)
	return nil
}

func (m *mockDB) GetClinicaByID(ctx context.Context, id uint) (*database.Clinica, error) {
	for _, c := range m.clinicas {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDB) ListClinicas(ctx context.Context) ([]*database.Clinica, error) {
	return m.clinicas, nil
}

func (m *mockDB) FirstClinica(ctx context.Context) (*database.Clinica, error) {
	if len(m.clinicas) == 0 {
		return nil, nil
	}
	return m.clinicas[0], nil
}

func (m *mockDB) CreateEquipo(ctx context.Context, e *database.EquipoBiomedico) error {
	e.ID = m.id()
	if e.HojaVidaID == "" {
		seq := 1
		for _, other := range m.equipos {
			if other.ClinicaID == e.ClinicaID {
				seq++
			}
		}
		e.HojaVidaID = fmt.Sprintf("HV-%d-%04d", e.ClinicaID, seq)
	}
	e.IsComplete = e.CheckCompleteness()
	e.FechaModificacion = time.Now()
	m.equipos[e.ID] = e
	return nil
}

func (m *mockDB) SaveEquipo(ctx context.Context, e *database.EquipoBiomedico) error {
	if _, ok := m.equipos[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	e.IsComplete = e.CheckCompleteness()
	e.FechaModificacion = time.Now()
	m.equipos[e.ID] = e
	return nil
}

func (m *mockDB) GetEquipoByID(ctx context.Context, id uint) (*database.EquipoBiomedico, error) {
	e, ok := m.equipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	copied.Documentos = nil
	for _, d := range m.documentos {
		if d.EquipoID == id {
			copied.Documentos = append(copied.Documentos, *d)
		}
	}
	copied.Historial = nil
	for _, h := range m.historial {
		if h.EquipoID == id {
			copied.Historial = append(copied.Historial, *h)
		}
	}
	return &copied, nil
}

func (m *mockDB) ListEquipos(ctx context.Context, scope database.Scope, filter database.EquipoFilter) ([]*database.EquipoBiomedico, error) {
	var out []*database.EquipoBiomedico
	for _, e := range m.equipos {
		if !scope.IsSuperuser && e.ClinicaID != scope.ClinicaID {
			continue
		}
		if scope.IsSuperuser && filter.ClinicaID != nil && e.ClinicaID != *filter.ClinicaID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.NombreEquipo), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.RequiereCalibracion != nil && e.RequiereCalibracion != *filter.RequiereCalibracion {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockDB) SerieExists(ctx context.Context, serie string) (bool, error) {
	for _, e := range m.equipos {
		if e.Serie == serie {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDB) FindDuplicado(ctx context.Context, clinicaID uint, nombre, marca, modelo string) (*database.EquipoBiomedico, error) {
	for _, e := range m.equipos {
		if e.ClinicaID == clinicaID &&
			strings.EqualFold(e.NombreEquipo, nombre) &&
			strings.EqualFold(e.Marca, marca) &&
			strings.EqualFold(e.Modelo, modelo) {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDB) ReplaceParametros(ctx context.Context, equipoID uint, parametros []database.ParametroEntregado) error {
	e, ok := m.equipos[equipoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range parametros {
		parametros[i].ID = m.id()
		parametros[i].EquipoID = equipoID
	}
	e.Parametros = parametros
	return nil
}

func (m *mockDB) AddDocumento(ctx context.Context, d *database.DocumentoAdjunto) error {
	d.ID = m.id()
	d.FechaCarga = time.Now()
	stored := *d
	m.documentos[d.ID] = &stored
	return nil
}

func (m *mockDB) GetDocumento(ctx context.Context, equipoID, documentoID uint) (*database.DocumentoAdjunto, error) {
	d, ok := m.documentos[documentoID]
	if !ok || d.EquipoID != equipoID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *mockDB) DeleteDocumento(ctx context.Context, equipoID, documentoID uint) error {
	d, ok := m.documentos[documentoID]
	if !ok || d.EquipoID != equipoID {
		return gorm.ErrRecordNotFound
	}
	delete(m.documentos, documentoID)
	return nil
}

func (m *mockDB) AppendHistorial(ctx context.Context, h *database.HistorialCambios) error {
	if strings.TrimSpace(h.MotivoCambio) == "" {
		return fmt.Errorf("motivo_cambio cannot be empty")
	}
	h.ID = m.id()
	h.FechaModificacion = time.Now()
	m.historial = append(m.historial, h)
	return nil
}

// mockStorage is an in-memory Storage used by the handler tests.
type mockStorage struct {
	files map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: make(map[string][]byte)}
}

func (s *mockStorage) Save(ctx context.Context, category, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s/%d_%s", category, len(s.files)+1, filename)
	s.files[name] = data
	return name, nil
}

func (s *mockStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *mockStorage) Delete(ctx context.Context, name string) error {
	delete(s.files, name)
	return nil
}

func (s *mockStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return "/media/" + name
}
