package potmanager

// Payout is the amount a single winner received from the pot
type Payout struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// PayWinners splits the pot evenly between the winners and adjusts their balances
// Odd chips are handed out one at a time in the order the winners are provided
func PayWinners(pot int, winners []Participant) []Payout {
	if len(winners) == 0 || pot <= 0 {
		return nil
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	payouts := make([]Payout, len(winners))
	for i, p := range winners {
		amount := share
		if i < remainder {
			amount++
		}

		p.AdjustBalance(amount)
		payouts[i] = Payout{
			Name:   p.Name(),
			Amount: amount,
		}
	}

	return payouts
}
