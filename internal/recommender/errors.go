package recommender

import "errors"

var (
	// ErrNotReady: todavía no hubo ningún entrenamiento exitoso.
	ErrNotReady = errors.New("recommender: ningún modelo entrenado todavía")

	// ErrTrainingInProgress: ya hay un fit corriendo; no se encola ni se duplica.
	ErrTrainingInProgress = errors.New("recommender: ya hay un entrenamiento en curso")

	// ErrPersistence: el fit terminó bien pero no se pudo guardar el artefacto.
	// El par activo anterior queda sirviendo.
	ErrPersistence = errors.New("recommender: no se pudo persistir el modelo")

	// ErrArtifactVersion: el artefacto en disco tiene un esquema que esta
	// versión del servicio no reconoce.
	ErrArtifactVersion = errors.New("recommender: versión de artefacto desconocida")
)
