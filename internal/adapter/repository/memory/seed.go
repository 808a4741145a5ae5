package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
)

// Seed is the JSON document LoadSeed reads.
type Seed struct {
	Participants []SeedParticipant `json:"participants"`
	Teams        []SeedTeam        `json:"teams"`
	Paydays      []Payday          `json:"paydays"`
}

// SeedParticipant is a participant in a seed document.
type SeedParticipant struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Claimed  bool   `json:"claimed"`
	Admin    bool   `json:"admin"`
}

// SeedTeam is a team in a seed document.
type SeedTeam struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Owner     string          `json:"owner"`
	Balance   decimal.Decimal `json:"balance"`
	Receiving decimal.Decimal `json:"receiving"`
	Giving    decimal.Decimal `json:"giving"`
}

// LoadSeedFile loads a seed document from path into s.
func (s *Store) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return s.LoadSeed(f)
}

// LoadSeed loads participants, teams and paydays into s. Team owners must be
// listed as participants.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}

	known := make(map[string]bool, len(seed.Participants))
	for _, p := range seed.Participants {
		if err := domain.ValidateID("participant", p.ID); err != nil {
			return err
		}
		known[p.ID] = true
		s.PutMember(domain.Member{
			ID:        p.ID,
			Username:  p.Username,
			IsClaimed: p.Claimed,
			IsAdmin:   p.Admin,
		})
	}

	for _, t := range seed.Teams {
		if err := domain.ValidateSlug(t.Slug); err != nil {
			return err
		}
		if !known[t.Owner] {
			return fmt.Errorf("%w: team %s owner %q is not a participant", domain.ErrInvalidInput, t.Slug, t.Owner)
		}
		s.PutTeam(domain.Team{
			ID:        t.ID,
			Slug:      t.Slug,
			Name:      t.Name,
			Owner:     t.Owner,
			IsPlural:  true,
			Balance:   t.Balance,
			Receiving: t.Receiving,
			Giving:    t.Giving,
		})
	}

	for _, p := range seed.Paydays {
		s.AddPayday(p.Start.UTC(), p.End.UTC())
	}

	return nil
}

// paydayJSON keeps Payday's JSON keys lowercase.
type paydayJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// UnmarshalJSON decodes {"start": ..., "end": ...}. A missing end marks a
// running payday.
func (p *Payday) UnmarshalJSON(data []byte) error {
	var raw paydayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Start, p.End = raw.Start, raw.End
	return nil
}
