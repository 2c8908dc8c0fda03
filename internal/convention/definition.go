package convention

// Definition is the structured partnership agreement attached to a node:
// point-count range, minimum suit lengths, balance flag, free-form tags.
// The tree stores whatever it is given. Range enforcement (HP in [0,37],
// suit lengths in [0,7]) belongs to the authoring layer, not here.
type Definition struct {
	MinHP       int      `json:"min_hp"`
	MaxHP       int      `json:"max_hp"`
	MinClubs    int      `json:"min_clubs"`
	MinDiamonds int      `json:"min_diamonds"`
	MinHearts   int      `json:"min_hearts"`
	MinSpades   int      `json:"min_spades"`
	Balanced    bool     `json:"balanced"`
	Tags        []string `json:"tags,omitempty"`
}

// Clone returns an independent copy, nil for nil.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	return &out
}
