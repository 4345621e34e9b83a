// Package cli provides the interactive terminal front end. It is a thin
// stand-in for the mobile screens: every command maps onto a usecase call and
// prints the resulting state.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"subletswipe/internal/delivery"
	"subletswipe/internal/domain/entity"
	"subletswipe/internal/usecase"

	"go.uber.org/fx"
)

type ShellParams struct {
	fx.In

	Logger   *slog.Logger
	Auth     usecase.AuthUsecase
	Roles    usecase.ActiveRoleUsecase
	Sessions usecase.SwipeSessionFactory
	Matches  usecase.MatchesUsecase
	Listings usecase.ListingUsecase
	Renters  usecase.RenterUsecase
}

type shell struct {
	logger   *slog.Logger
	auth     usecase.AuthUsecase
	roles    usecase.ActiveRoleUsecase
	sessions usecase.SwipeSessionFactory
	matches  usecase.MatchesUsecase
	listings usecase.ListingUsecase
	renters  usecase.RenterUsecase

	in  io.Reader
	out io.Writer

	swipe usecase.SwipeSession
}

// NewShell creates the stdin/stdout shell delivery.
func NewShell(params ShellParams) delivery.Delivery {
	return &shell{
		logger:   params.Logger,
		auth:     params.Auth,
		roles:    params.Roles,
		sessions: params.Sessions,
		matches:  params.Matches,
		listings: params.Listings,
		renters:  params.Renters,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Serve runs the read-eval-print loop until EOF or "quit".
func (s *shell) Serve(ctx context.Context) error {
	fmt.Fprintln(s.out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err := s.dispatch(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *shell) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "help":
		s.printHelp()
		return nil
	case "signup":
		return s.signup(ctx, args)
	case "login":
		return s.login(ctx, args)
	case "logout":
		return s.auth.SignOut(ctx)
	case "whoami":
		return s.whoami(ctx)
	case "refresh":
		return s.refresh(ctx)
	case "role":
		return s.switchRole(args)
	case "use":
		return s.useResource(args)
	case "queue":
		return s.loadQueue(ctx)
	case "swipe":
		return s.recordSwipe(ctx, args)
	case "recs":
		return s.loadRecommendations(ctx)
	case "matches":
		return s.showMatches(ctx)
	case "profile":
		return s.showProfile(ctx)
	case "listing":
		return s.showListing(ctx, args)
	case "suggest":
		return s.suggestAddresses(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `commands:
  signup <email> <first> <last> <password>
  login <email> <password>   sign in
  logout                     sign out
  whoami                     show the signed-in user
  refresh                    re-fetch resources and re-derive the role
  role renter|lister         switch sides
  use <id>                   equip a specific resource
  queue                      start a swipe session for the active role
  swipe left|right           swipe the current card
  recs                       load the recommendations fallback
  matches                    list mutual matches
  profile                    show the renter profile
  listing <id>               show one listing
  suggest <address...>       address autocomplete
  quit                       leave
`)
}

func (s *shell) signup(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: signup <email> <first> <last> <password>")
	}

	id, err := s.auth.SignUp(ctx, &usecase.SignUpInput{
		Email:     args[0],
		FirstName: args[1],
		LastName:  args[2],
		Password:  args[3],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "account %d created, log in to continue\n", id)

	return nil
}

func (s *shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}

	user, err := s.auth.Login(ctx, &usecase.LoginInput{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "signed in as %s\n", user.DisplayName())

	return s.refresh(ctx)
}

func (s *shell) whoami(ctx context.Context) error {
	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s <%s>\n", user.DisplayName(), user.Email)

	return nil
}

func (s *shell) refresh(ctx context.Context) error {
	if err := s.roles.RefreshResources(ctx); err != nil {
		return err
	}
	s.printRole()

	return nil
}

func (s *shell) printRole() {
	role := s.roles.ActiveRole()
	if role.HasResource() {
		fmt.Fprintf(s.out, "acting as %s with resource %d\n", role.Role(), role.ResourceID)
	} else {
		fmt.Fprintf(s.out, "acting as %s with no resource yet\n", role.Role())
	}
}

func (s *shell) switchRole(args []string) error {
	if len(args) != 1 || (args[0] != "renter" && args[0] != "lister") {
		return fmt.Errorf("usage: role renter|lister")
	}

	s.roles.SetIsRenter(args[0] == "renter")
	// The new side keeps whatever resource the next refresh assigns it.
	s.swipe = nil
	s.printRole()

	return nil
}

func (s *shell) useResource(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: use <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: use <id>")
	}

	s.roles.SetResourceID(id)
	s.swipe = nil
	s.printRole()

	return nil
}

func (s *shell) loadQueue(ctx context.Context) error {
	s.swipe = s.sessions.NewSession(s.roles.ActiveRole())
	if err := s.swipe.LoadQueue(ctx); err != nil {
		return err
	}
	s.printCard()

	return nil
}

func (s *shell) loadRecommendations(ctx context.Context) error {
	if s.swipe == nil {
		return fmt.Errorf("no swipe session, run queue first")
	}
	if err := s.swipe.LoadRecommendations(ctx); err != nil {
		return err
	}
	s.printCard()

	return nil
}

func (s *shell) recordSwipe(ctx context.Context, args []string) error {
	if s.swipe == nil {
		return fmt.Errorf("no swipe session, run queue first")
	}
	if len(args) != 1 || (args[0] != "left" && args[0] != "right") {
		return fmt.Errorf("usage: swipe left|right")
	}

	snap := s.swipe.Snapshot()
	if _, ok := snap.Current(); !ok {
		return fmt.Errorf("no card to swipe")
	}

	s.swipe.RecordSwipe(ctx, snap.Cursor, args[0] == "right")

	snap = s.swipe.Snapshot()
	if snap.Celebration != nil {
		fmt.Fprintf(s.out, "It's a match with %s!\n", snap.Celebration.CounterpartName)
		s.swipe.DismissCelebration()
	}
	s.printCard()

	return nil
}

func (s *shell) printCard() {
	snap := s.swipe.Snapshot()
	switch snap.Phase {
	case usecase.PhaseReady:
		card, _ := snap.Current()
		role := s.roles.ActiveRole()
		fmt.Fprintf(s.out, "card %d/%d: %s\n", snap.Cursor+1, len(snap.Queue), describeCard(card, role.IsRenter))
	case usecase.PhaseExhausted:
		if snap.CanFetchRecommendations {
			fmt.Fprintln(s.out, `no more cards; "recs" loads what other renters are swiping on`)
		} else {
			fmt.Fprintln(s.out, "no more cards")
		}
	case usecase.PhaseError:
		fmt.Fprintf(s.out, "queue failed: %s\n", snap.Error)
	default:
		fmt.Fprintln(s.out, "loading...")
	}
}

func describeCard(card entity.MatchCandidate, viewerIsRenter bool) string {
	if viewerIsRenter {
		return fmt.Sprintf("%s, $%.0f/mo, %s to %s",
			card.AddressString, card.AskingPrice, card.StartDate, card.EndDate)
	}

	return fmt.Sprintf("%s, budget $%.0f/mo, %s to %s",
		card.CounterpartName(viewerIsRenter), card.Budget, card.StartDate, card.EndDate)
}

func (s *shell) showMatches(ctx context.Context) error {
	role := s.roles.ActiveRole()
	candidates, err := s.matches.MutualMatches(ctx, role)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(s.out, "no mutual matches yet")

		return nil
	}
	for _, candidate := range candidates {
		fmt.Fprintf(s.out, "- %s\n", describeCard(candidate, role.IsRenter))
	}

	return nil
}

func (s *shell) showProfile(ctx context.Context) error {
	id, found := s.roles.RenterProfileID()
	if !found {
		return fmt.Errorf("no renter profile yet")
	}

	profile, err := s.renters.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "budget $%.0f/mo near %s, %s to %s\n",
		profile.Budget, profile.AddressString, profile.StartDate, profile.EndDate)
	if profile.Bio != "" {
		fmt.Fprintln(s.out, profile.Bio)
	}

	return nil
}

func (s *shell) showListing(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: listing <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: listing <id>")
	}

	listing, err := s.listings.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s, $%.0f/mo, %s to %s\n",
		listing.AddressString, listing.AskingPrice, listing.StartDate, listing.EndDate)
	if listing.Description != "" {
		fmt.Fprintln(s.out, listing.Description)
	}

	return nil
}

func (s *shell) suggestAddresses(ctx context.Context, args []string) error {
	predictions, err := s.listings.AddressSuggestions(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, prediction := range predictions {
		fmt.Fprintf(s.out, "- %s\n", prediction.Description)
	}

	return nil
}
