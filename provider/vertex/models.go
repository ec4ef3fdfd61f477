package vertex

import (
	"cmp"

	"github.com/lionspace/vertexflow/internal/registry"
)

// Bound describes a generation parameter's default and allowed range.
type Bound[T cmp.Ordered] struct {
	Default T
	Min     T
	Max     T
}

// Clamp forces v into the bound's range.
func (b Bound[T]) Clamp(v T) T {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// ParameterBounds groups the tunable generation parameters of a model.
type ParameterBounds struct {
	Temperature Bound[float64]
	MaxTokens   Bound[int]
	TopP        Bound[float64]
	TopK        Bound[int]
}

// ModelConfig is one entry of the static Vertex model registry.
type ModelConfig struct {
	// Name is the registry name exposed to callers and the host framework.
	Name string
	// DisplayName is the human-facing label.
	DisplayName string
	// ModelID is the published Vertex model identifier.
	ModelID string
	// Description explains the model's intent.
	Description string

	ContextSize    int
	MaxChunks      int
	ChunkSize      int
	SupportsHebrew bool

	Params ParameterBounds
}

var models = registry.New[ModelConfig]()

func register(mc ModelConfig) {
	models.Add(mc.Name, mc)
}

func init() {
	register(ModelConfig{
		Name:           "gemini-pro",
		DisplayName:    "Gemini Pro",
		ModelID:        "gemini-1.5-pro",
		Description:    "Advanced multimodal model with Hebrew RTL support",
		ContextSize:    30720,
		MaxChunks:      1,
		ChunkSize:      4000,
		SupportsHebrew: true,
		Params: ParameterBounds{
			Temperature: Bound[float64]{Default: 0.7, Min: 0, Max: 1},
			MaxTokens:   Bound[int]{Default: 1024, Min: 1, Max: 8192},
			TopP:        Bound[float64]{Default: 0.95, Min: 0, Max: 1},
			TopK:        Bound[int]{Default: 40, Min: 1, Max: 100},
		},
	})
	register(ModelConfig{
		Name:           "gemini-flash",
		DisplayName:    "Gemini Flash",
		ModelID:        "gemini-1.5-flash",
		Description:    "Fast, efficient model optimized for Hebrew conversations",
		ContextSize:    30720,
		MaxChunks:      1,
		ChunkSize:      4000,
		SupportsHebrew: true,
		Params: ParameterBounds{
			Temperature: Bound[float64]{Default: 0.3, Min: 0, Max: 1},
			MaxTokens:   Bound[int]{Default: 1024, Min: 1, Max: 8192},
			TopP:        Bound[float64]{Default: 0.95, Min: 0, Max: 1},
			TopK:        Bound[int]{Default: 40, Min: 1, Max: 100},
		},
	})
}

// Lookup returns the registry entry for name.
func Lookup(name string) (ModelConfig, bool) {
	return models.Get(name)
}

// Names lists the registered model names in sorted order.
func Names() []string {
	return models.Names()
}

// All returns every registered model configuration, in name order.
func All() []ModelConfig {
	out := make([]ModelConfig, 0, models.Len())
	for _, name := range models.Names() {
		if mc, ok := models.Get(name); ok {
			out = append(out, mc)
		}
	}
	return out
}
