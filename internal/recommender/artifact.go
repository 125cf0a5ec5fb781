package recommender

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// artifactSchema se sube cada vez que cambia la forma serializada del par.
// Un servicio viejo no debe intentar interpretar un artefacto nuevo.
const artifactSchema = 1

const artifactFile = "recommender.json"

type artifact struct {
	Schema int        `json:"schema"`
	Pair   *ModelPair `json:"pair"`
}

// saveArtifact escribe a un archivo temporal y renombra: o queda el
// artefacto completo o queda el anterior, nunca uno truncado.
func saveArtifact(dir string, pair *ModelPair) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	b, err := json.Marshal(artifact{Schema: artifactSchema, Pair: pair})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, artifactFile+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, artifactFile))
}

func loadArtifact(dir string) (*ModelPair, error) {
	b, err := os.ReadFile(filepath.Join(dir, artifactFile))
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, err
	}
	if a.Schema != artifactSchema {
		return nil, fmt.Errorf("%w: schema=%d, esperado %d", ErrArtifactVersion, a.Schema, artifactSchema)
	}
	if a.Pair == nil || a.Pair.Collab == nil || a.Pair.Content == nil {
		return nil, fmt.Errorf("%w: artefacto incompleto", ErrArtifactVersion)
	}
	return a.Pair, nil
}
