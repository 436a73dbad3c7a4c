package avatar

import "mindprint/internal/seed"

type PoseID string

const (
	PoseStand     PoseID = "STAND"
	PoseWave      PoseID = "WAVE"
	PoseThinkChin PoseID = "THINK_CHIN"
	PoseHoldBook  PoseID = "HOLD_BOOK"
	PoseJump      PoseID = "JUMP"
	PoseShrug     PoseID = "SHRUG"
)

type point struct{ X, Y float64 }

// PoseTemplate fixes the limb quadratic control points and a body offset.
type PoseTemplate struct {
	ID          PoseID
	ArmL        [3]point
	ArmR        [3]point
	LegL        [3]point
	LegR        [3]point
	BodyYOffset float64
}

var poseTemplates = []PoseTemplate{
	{
		ID:          PoseStand,
		ArmL:        [3]point{{76, 118}, {64, 136}, {70, 154}},
		ArmR:        [3]point{{124, 118}, {136, 136}, {130, 154}},
		LegL:        [3]point{{90, 158}, {88, 176}, {86, 188}},
		LegR:        [3]point{{110, 158}, {112, 176}, {114, 188}},
		BodyYOffset: 0,
	},
	{
		ID:          PoseWave,
		ArmL:        [3]point{{76, 118}, {60, 104}, {62, 88}},
		ArmR:        [3]point{{124, 118}, {136, 136}, {132, 152}},
		LegL:        [3]point{{92, 158}, {90, 176}, {90, 188}},
		LegR:        [3]point{{110, 158}, {114, 176}, {116, 188}},
		BodyYOffset: -1,
	},
	{
		ID:          PoseThinkChin,
		ArmL:        [3]point{{76, 118}, {86, 136}, {92, 146}},
		ArmR:        [3]point{{124, 118}, {116, 108}, {107, 102}},
		LegL:        [3]point{{90, 158}, {90, 176}, {90, 188}},
		LegR:        [3]point{{110, 158}, {110, 176}, {110, 188}},
		BodyYOffset: 0,
	},
	{
		ID:          PoseHoldBook,
		ArmL:        [3]point{{76, 118}, {84, 130}, {90, 140}},
		ArmR:        [3]point{{124, 118}, {116, 130}, {110, 140}},
		LegL:        [3]point{{92, 158}, {90, 176}, {88, 188}},
		LegR:        [3]point{{108, 158}, {110, 176}, {112, 188}},
		BodyYOffset: 1,
	},
	{
		ID:          PoseJump,
		ArmL:        [3]point{{76, 116}, {62, 104}, {56, 92}},
		ArmR:        [3]point{{124, 116}, {138, 104}, {144, 92}},
		LegL:        [3]point{{92, 156}, {82, 170}, {74, 180}},
		LegR:        [3]point{{108, 156}, {118, 170}, {126, 180}},
		BodyYOffset: -6,
	},
	{
		ID:          PoseShrug,
		ArmL:        [3]point{{76, 118}, {66, 122}, {60, 128}},
		ArmR:        [3]point{{124, 118}, {134, 122}, {140, 128}},
		LegL:        [3]point{{90, 158}, {90, 176}, {88, 188}},
		LegR:        [3]point{{110, 158}, {110, 176}, {112, 188}},
		BodyYOffset: -1,
	},
}

// selectPose gathers trait-gated candidates, allowing duplicates, then picks
// one. Duplicate entries raise a pose's selection odds on purpose.
func selectPose(traits TraitVector, rng seed.Stream) PoseTemplate {
	var pool []PoseID
	if traits.Energy > 0.7 {
		pool = append(pool, PoseJump, PoseWave)
	}
	if traits.Calm > 0.65 {
		pool = append(pool, PoseThinkChin, PoseHoldBook)
	}
	if traits.Openness > 0.6 {
		pool = append(pool, PoseWave, PoseShrug)
	}
	if traits.Order > 0.6 {
		pool = append(pool, PoseStand, PoseHoldBook)
	}
	if len(pool) == 0 {
		pool = append(pool, PoseStand, PoseWave, PoseThinkChin, PoseHoldBook, PoseJump, PoseShrug)
	}
	return poseByID(seed.PickOne(rng, pool))
}

func poseByID(id PoseID) PoseTemplate {
	for _, pose := range poseTemplates {
		if pose.ID == id {
			return pose
		}
	}
	return poseTemplates[0]
}
