package terminal

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/moneybank/moneybank/internal/account"
	"github.com/moneybank/moneybank/internal/money"
	"github.com/moneybank/moneybank/internal/statement"
)

func (t *Terminal) accountMenu(ctx context.Context, acct *account.Account) error {
	log := zerolog.Ctx(ctx).With().Str("account_id", acct.ID().String()).Logger()

	t.println()
	t.printf("Welcome, %s!\n", acct.Owner())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.println()
		t.println("What would you like to do?")
		t.println("1. Add money")
		t.println("2. Take money out")
		t.println("3. See balance")
		t.println("4. View money move history")
		t.println("5. Export history as CSV")
		t.println("6. Go back to main menu")

		choice, err := t.prompt("Pick an action (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			raw, err := t.prompt("Enter amount to add: " + t.symbol)
			if err != nil {
				return err
			}
			amount, err := money.Parse(raw)
			if err != nil {
				t.println("That wasn't a valid number.")
				continue
			}
			rec, err := acct.Deposit(amount)
			if err != nil {
				log.Debug().Err(err).Msg("deposit rejected")
				t.println("You can't add zero or negative money.")
				continue
			}
			log.Debug().Int("seq", rec.Seq).Str("balance", acct.Balance().String()).Msg("deposit")
			t.println(rec.Description)
		case "2":
			raw, err := t.prompt("Enter amount to take out: " + t.symbol)
			if err != nil {
				return err
			}
			amount, err := money.Parse(raw)
			if err != nil {
				t.println("That wasn't a valid number.")
				continue
			}
			rec, err := acct.Withdraw(amount)
			if err != nil {
				log.Debug().Err(err).Msg("withdrawal rejected")
				t.println(t.withdrawalRejection(err))
				continue
			}
			log.Debug().Int("seq", rec.Seq).Str("balance", acct.Balance().String()).Msg("withdrawal")
			t.println(rec.Description)
		case "3":
			t.printf("Current balance: %s\n", t.amount(acct.Balance()))
		case "4":
			t.showHistory(acct)
		case "5":
			if err := statement.Write(t.out, acct); err != nil {
				log.Error().Err(err).Msg("writing statement")
				t.printf("Could not export history: %v\n", err)
			}
		case "6":
			t.println("Returning to main menu...")
			return nil
		default:
			t.println("Pick something between 1 and 6.")
		}
	}
}

func (t *Terminal) withdrawalRejection(err error) string {
	var ife *account.InsufficientFundsError
	switch {
	case errors.As(err, &ife) && !ife.Fee.IsZero():
		return "Not enough money. You need " + t.amount(ife.Required) + " including the fee."
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Not enough funds to make this withdrawal."
	default:
		return "Taking out zero or negative money? Not allowed."
	}
}

func (t *Terminal) showHistory(acct *account.Account) {
	t.println()
	t.println("Transaction History:")
	history := acct.History()
	if len(history) == 0 {
		t.println("No activity yet. This account's clean as a whistle.")
		return
	}
	for _, r := range history {
		t.printf("%d. %s\n", r.Seq, r.Description)
	}
}
