package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dd0wney/gossip-diffusion/pkg/config"
	"github.com/dd0wney/gossip-diffusion/pkg/diffusion"
)

// Request describes one simulation run. Fields a model does not use are
// ignored.
type Request struct {
	Model           diffusion.Model       `json:"model"`
	Seeds           []uint64              `json:"seeds"`
	Epsilon         float64               `json:"epsilon,omitempty"`
	Probability     float64               `json:"probability,omitempty"`
	RandomSeed      int64                 `json:"random_seed"`
	Policy          diffusion.RoundPolicy `json:"policy"`
	Anchor          diffusion.Anchor      `json:"anchor"`
	StrictAdjacency bool                  `json:"strict_adjacency,omitempty"`
	MaxRounds       int                   `json:"max_rounds,omitempty"`
}

// RequestFromConfig converts the simulation section of a config file
func RequestFromConfig(sc config.SimulationConfig) (Request, error) {
	model, err := diffusion.ParseModel(sc.Model)
	if err != nil {
		return Request{}, err
	}
	policy, err := diffusion.ParsePolicy(sc.Policy)
	if err != nil {
		return Request{}, err
	}
	anchor, err := diffusion.ParseAnchor(sc.Anchor)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Model:           model,
		Seeds:           append([]uint64(nil), sc.Seeds...),
		Epsilon:         sc.Epsilon,
		Probability:     sc.Probability,
		RandomSeed:      sc.RandomSeed,
		Policy:          policy,
		Anchor:          anchor,
		StrictAdjacency: sc.StrictAdjacency,
		MaxRounds:       sc.MaxRounds,
	}, nil
}

// Report is the outcome of a successful run
type Report struct {
	RunID     string            `json:"run_id"`
	Request   Request           `json:"request"`
	Result    *diffusion.Result `json:"result"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
}

// ArtifactKey names the rendered plot of this run:
//
//	icm/degree_12_5.spread.svg
//	cascade/cascade_12_5.svg
//	cnim/spread_from_12_5.svg
//	potential/potential_diffusion_12.svg
func (r *Report) ArtifactKey() string {
	seeds := make([]string, len(r.Request.Seeds))
	for i, s := range r.Request.Seeds {
		seeds[i] = fmt.Sprint(s)
	}
	joined := strings.Join(seeds, "_")

	switch r.Request.Model {
	case diffusion.ModelICM:
		return fmt.Sprintf("icm/degree_%s.spread.svg", joined)
	case diffusion.ModelCNIM:
		return fmt.Sprintf("cnim/spread_from_%s.svg", joined)
	case diffusion.ModelPotential:
		return fmt.Sprintf("potential/potential_diffusion_%s.svg", joined)
	default:
		return fmt.Sprintf("%s/%s_%s.svg", r.Request.Model, r.Request.Model, joined)
	}
}

// NetworkArtifactKey names the plot of the bare network
const NetworkArtifactKey = "network.svg"
