package control

import (
	"fmt"
	"log/slog"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// SetProfile activates profileName on the card named cardName and reports
// whether it did. An unknown card or profile returns false without the
// profile-set command ever reaching the server; the lookup runs over the
// card's full profile list, not the filtered output listing, so any declared
// profile can be selected. A rejected profile-set command is a hard error.
func (e *Engine) SetProfile(cardName, profileName string) (bool, error) {
	var ok bool
	err := e.do("set_profile", func() error {
		cards, err := e.conn.Cards()
		if err != nil {
			return fmt.Errorf("set profile: %w", err)
		}
		var card *pulse.Card
		for i := range cards {
			if cards[i].Name == cardName {
				card = &cards[i]
				break
			}
		}
		if card == nil {
			slog.Warn("Card not found", "card", cardName)
			return nil
		}
		if !hasProfile(card, profileName) {
			slog.Warn("Profile not found on card", "card", cardName, "profile", profileName)
			return nil
		}
		if err := e.conn.SetCardProfile(card.Index, profileName); err != nil {
			return fmt.Errorf("set profile %q on card %q: %w", profileName, cardName, err)
		}
		slog.Info("Card profile set", "card", cardName, "profile", profileName)
		ok = true
		return nil
	})
	return ok, err
}

func hasProfile(card *pulse.Card, name string) bool {
	for _, p := range card.Profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}
