package recommender

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/models"
)

// State es el estado del ciclo de vida del modelo.
type State int32

const (
	StateUninitialized State = iota
	StateTraining
	StateReady
	StateFailed // el fit calculó bien pero no se pudo persistir
)

func (s State) String() string {
	switch s {
	case StateTraining:
		return "training"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// ModelPair es el par (colaborativo, contenido) que se sirve, más lo que
// el blender necesita del snapshot (negocios y qué calificó cada usuario).
// Una vez construido no se muta: el snapshot se descarta después del fit.
type ModelPair struct {
	Version  string    `json:"version"` // identificador del fit
	FittedAt time.Time `json:"fittedAt"`

	Collab  *CollabModel  `json:"collab"`
	Content *ContentModel `json:"content"`

	Businesses map[string]models.Business   `json:"businesses"`
	RatedBy    map[string]map[string]float64 `json:"ratedBy"`
}

// Manager es el dueño del ciclo de vida: entrena, persiste y cambia el par
// activo de forma atómica. El puntero activo es el único estado compartido
// mutable; las lecturas del camino caliente no toman locks.
type Manager struct {
	modelDir  string
	collabCfg CollabConfig

	active   atomic.Pointer[ModelPair]
	training atomic.Bool
	state    atomic.Int32
}

func NewManager(modelDir string, cfg CollabConfig) *Manager {
	return &Manager{modelDir: modelDir, collabCfg: cfg}
}

// Fit entrena ambos modelos contra el snapshot, persiste el artefacto y
// recién ahí publica el par nuevo. Los lectores en vuelo siguen contra el
// par viejo hasta el swap; nunca ven un par a medias.
//
// Solo puede correr un fit a la vez: un segundo llamado concurrente recibe
// ErrTrainingInProgress de inmediato, no se encola. onProgress es opcional.
func (m *Manager) Fit(ds *ingest.Dataset, onProgress func(phase string)) (*ModelPair, error) {
	if !m.training.CompareAndSwap(false, true) {
		return nil, ErrTrainingInProgress
	}
	defer m.training.Store(false)

	m.state.Store(int32(StateTraining))
	report := func(phase string) {
		if onProgress != nil {
			onProgress(phase)
		}
	}

	start := time.Now()

	report("entrenando modelo de contenido")
	content := FitContent(ds)

	report("entrenando modelo colaborativo")
	collab := FitCollab(ds, m.collabCfg)

	pair := &ModelPair{
		Version:    start.UTC().Format("20060102T150405"),
		FittedAt:   start,
		Collab:     collab,
		Content:    content,
		Businesses: ds.Businesses,
		RatedBy:    ds.ByUser,
	}

	report("persistiendo artefacto")
	if err := saveArtifact(m.modelDir, pair); err != nil {
		// nunca servir un modelo a medio escribir: el par anterior sigue vivo
		m.state.Store(int32(StateFailed))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	m.active.Store(pair)
	m.state.Store(int32(StateReady))
	report("listo")

	log.Printf("[modelo] fit %s: %d ratings, %d negocios, %d usuarios (%s)",
		pair.Version, len(ds.Ratings), len(ds.Businesses), len(ds.ByUser), time.Since(start))

	return pair, nil
}

// GetActive devuelve el par que se está sirviendo, o ErrNotReady si nunca
// hubo un fit exitoso (ni artefacto cargado).
func (m *Manager) GetActive() (*ModelPair, error) {
	pair := m.active.Load()
	if pair == nil {
		return nil, ErrNotReady
	}
	return pair, nil
}

// Ready indica si hay un par servible.
func (m *Manager) Ready() bool {
	return m.active.Load() != nil
}

// State devuelve el estado actual del ciclo de vida.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// IsStale devuelve true si pasó más de d desde el último fit exitoso.
// Es una señal de observabilidad: acá no se dispara ningún retrain.
func (m *Manager) IsStale(d time.Duration) bool {
	pair := m.active.Load()
	if pair == nil {
		return true
	}
	return time.Since(pair.FittedAt) > d
}

// LoadArtifact restaura el último par persistido (arranque en caliente).
// Un artefacto con esquema desconocido se rechaza, no se adivina.
func (m *Manager) LoadArtifact() error {
	pair, err := loadArtifact(m.modelDir)
	if err != nil {
		return err
	}
	m.active.Store(pair)
	m.state.Store(int32(StateReady))
	log.Printf("[modelo] artefacto %s cargado (fit del %s)", pair.Version, pair.FittedAt.Format(time.RFC3339))
	return nil
}
