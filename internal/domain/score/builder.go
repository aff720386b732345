package score

import (
	"fmt"

	"github.com/davidrhall/conquest-go/internal/domain/game"
)

// Variant is one named compound score a builder exposes for selection.
// Variants are immutable once added.
type Variant struct {
	// Name is the display name, already translated
	Name string

	// Score is the compound score to evaluate
	Score CompoundScore

	// ID is the originating score kind, 0 for composites
	ID ScoreID

	// Decay is the per-turn percentage decay applied for display, 0 for most scores
	Decay int32

	// WinLimit is the value needed to win, -1 if none
	WinLimit int32
}

// builderBase holds the variant table shared by ChartBuilder and
// TableBuilder. The two builders are never used through a common
// abstraction at runtime, so plain embedding is all that is needed.
type builderBase struct {
	variants []Variant
}

// NumVariants returns the number of discovered variants
func (b *builderBase) NumVariants() int {
	return len(b.variants)
}

// Variant returns a variant by index, nil if out of range
func (b *builderBase) Variant(index int) *Variant {
	if index < 0 || index >= len(b.variants) {
		return nil
	}
	return &b.variants[index]
}

// FindVariant returns the first variant whose score equals the given one,
// along with its index; nil and -1 if none matches.
func (b *builderBase) FindVariant(score CompoundScore) (*Variant, int) {
	for i := range b.variants {
		if b.variants[i].Score.Equals(score) {
			return &b.variants[i], i
		}
	}
	return nil, -1
}

// Variants returns the full ordered variant list
func (b *builderBase) Variants() []Variant {
	return b.variants
}

// addVariant appends a variant. Invalid scores are dropped, and so are
// scores structurally equal to an already-present variant's score.
func (b *builderBase) addVariant(name string, score CompoundScore, id ScoreID, decay, winLimit int32) {
	if !score.IsValid() {
		return
	}
	if existing, _ := b.FindVariant(score); existing != nil {
		return
	}
	b.variants = append(b.variants, Variant{
		Name:     name,
		Score:    score,
		ID:       id,
		Decay:    decay,
		WinLimit: winLimit,
	})
}

// singleBuilder adds single-kind variants with the decay and win-limit
// lookups done in one place instead of at every call site.
type singleBuilder struct {
	base   *builderBase
	scores *TurnScoreList
	teams  *game.TeamSettings
	host   game.HostVersion
	config *game.HostConfiguration
}

// add creates a factor-1 variant for one score kind. Build points decay
// over time on PHost, so that variant gets the viewpoint player's decay
// rate; the win limit comes from the stored description if there is one.
func (sb singleBuilder) add(name string, id ScoreID) {
	var decay int32
	if id == ScoreIDBuildPoints && sb.host.IsPHost() {
		decay = sb.config.PALDecayPerTurn(sb.teams.ViewpointPlayer())
	}
	winLimit := int32(-1)
	if d := sb.scores.GetDescription(id); d != nil {
		winLimit = d.WinLimit
	}
	sb.base.addVariant(name, NewSingleScore(sb.scores, id, 1), id, decay, winLimit)
}

// addRemainingScores adds a variant for every schema slot not yet covered
// by the fixed variant sequence. Dedup in addVariant drops the covered
// ones; the rest are named from their description, the legacy minefield
// names, or a generic fallback.
func (sb singleBuilder) addRemainingScores(tx game.Translator) {
	for i := 0; i < sb.scores.NumScores(); i++ {
		id, ok := sb.scores.ScoreByIndex(i)
		if !ok {
			continue
		}
		name := ""
		if d := sb.scores.GetDescription(id); d != nil {
			name = d.Name
		}
		if name == "" {
			switch id {
			case ScoreIDMinesAllowed:
				name = tx.Translate("Minefields Allowed")
			case ScoreIDMinesLaid:
				name = tx.Translate("Minefields Laid")
			default:
				name = fmt.Sprintf(tx.Translate("Score #%d"), id)
			}
		}
		sb.add(name, id)
	}
}
