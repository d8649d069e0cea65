package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"billy-pet/internal/console"
	"billy-pet/internal/domain/guessing"
	"billy-pet/internal/domain/pets"
	"billy-pet/internal/platform/logger"
)

const menuPrompt = "|  Please type on option to continue:"

// -------------------------
// Fake random source
// -------------------------

type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := 0
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return v % n
}

// secret devuelve el valor que produce ese secreto en [1,100].
func secret(n int) int { return n - 1 }

// -------------------------
// Helpers
// -------------------------

func newPet(t *testing.T) pets.Pet {
	t.Helper()
	p, err := pets.New("Billy")
	if err != nil {
		t.Fatalf("pets.New: %v", err)
	}
	return p
}

func run(t *testing.T, input string, rnd ...int) (string, pets.Pet, error) {
	t.Helper()

	var out bytes.Buffer
	c := console.New(console.Options{
		In:     strings.NewReader(input),
		Out:    &out,
		Rand:   &seqSource{vals: rnd},
		Logger: logger.Discard(),
	})

	p, err := c.Run(context.Background(), newPet(t))
	return out.String(), p, err
}

func mustRun(t *testing.T, input string, rnd ...int) (string, pets.Pet) {
	t.Helper()
	out, p, err := run(t, input, rnd...)
	if err != nil {
		t.Fatalf("unexpected err: %v\noutput:\n%s", err, out)
	}
	return out, p
}

func after(t *testing.T, out, marker string) string {
	t.Helper()
	i := strings.Index(out, marker)
	if i < 0 {
		t.Fatalf("marker %q not found in output:\n%s", marker, out)
	}
	return out[i+len(marker):]
}

// -------------------------
// Tests
// -------------------------

func TestRun_QuitEndsSession(t *testing.T) {
	for _, cmd := range []string{"quit", "q"} {
		out, _ := mustRun(t, cmd+"\n")

		if !strings.HasPrefix(out, "|  reeeOWWW!") {
			t.Fatalf("%s: expected greeting first, got:\n%s", cmd, out)
		}
		if strings.Count(out, menuPrompt) != 1 {
			t.Fatalf("%s: expected a single menu, got:\n%s", cmd, out)
		}
		if !strings.HasSuffix(out, "See you next time friendo!\n") {
			t.Fatalf("%s: expected farewell as last line, got:\n%s", cmd, out)
		}
	}
}

func TestRun_FeedIncrementsAndReturnsToMenu(t *testing.T) {
	out, p := mustRun(t, "feed\nfeed\nfeed\nq\n")

	if p.Happiness != 80 {
		t.Fatalf("expected happiness 80, got %d", p.Happiness)
	}
	if strings.Count(out, "*You fed Billy his favorite meal*") != 3 {
		t.Fatalf("expected 3 feeding lines:\n%s", out)
	}
	if strings.Count(out, menuPrompt) != 4 {
		t.Fatalf("expected menu after every feed:\n%s", out)
	}
}

func TestRun_Status(t *testing.T) {
	out, _ := mustRun(t, "feed\nstatus\nq\n")

	rest := after(t, out, "Happiness: 60\nStomach 55% full\n")
	if !strings.Contains(rest, menuPrompt) {
		t.Fatalf("expected menu after status:\n%s", rest)
	}
}

func TestRun_UnrecognizedIsCaseSensitive(t *testing.T) {
	out, p := mustRun(t, "Feed\n  dance  \nq\n")

	if p.Happiness != 50 {
		t.Fatalf("Feed must not be treated as feed, happiness=%d", p.Happiness)
	}
	if !strings.Contains(out, "You chose to: Feed\nRrr... not sure what to do with that. Let's try something else\n") {
		t.Fatalf("expected apology for Feed:\n%s", out)
	}
	if !strings.Contains(out, "You chose to: dance\n") {
		t.Fatalf("expected trimmed echo for dance:\n%s", out)
	}
	if strings.Count(out, menuPrompt) != 3 {
		t.Fatalf("expected menu after each unknown command:\n%s", out)
	}
}

func TestRun_GuessInOne(t *testing.T) {
	out, _ := mustRun(t, "game\n42\nq\n", secret(42))

	rest := after(t, out, "You guessed: 42\n")
	if !strings.HasPrefix(rest, guessing.InOneMessage+"\n...\n...\n...\n\n") {
		t.Fatalf("expected in-one message then outro:\n%s", rest)
	}
	if !strings.Contains(rest, menuPrompt) {
		t.Fatalf("expected menu after game:\n%s", rest)
	}
}

func TestRun_GuessIgnoresNonNumeric(t *testing.T) {
	// "abc" y "-5" no cuentan como intento: 42 sigue siendo a la primera.
	out, _ := mustRun(t, "play\nabc\n-5\n42\nq\n", secret(42))

	if strings.Count(out, "Enter a guess, please:") != 3 {
		t.Fatalf("expected silent re-prompts:\n%s", out)
	}
	if strings.Contains(out, "You guessed: -5") {
		t.Fatalf("negative guess must be ignored:\n%s", out)
	}
	if !strings.Contains(out, guessing.InOneMessage) {
		t.Fatalf("ignored lines must not count as guesses:\n%s", out)
	}
}

func TestRun_GuessFeedbackAndSpooky(t *testing.T) {
	out, _ := mustRun(t, "game\n50\n5\n13\nq\n", secret(13))

	want := "You guessed: 50\nToo big!\n" +
		"Enter a guess, please:\nYou guessed: 5\nToo small!\n" +
		"Enter a guess, please:\nYou guessed: 13\n" + guessing.SpookyMessage + "\n"
	if !strings.Contains(out, want) {
		t.Fatalf("unexpected game transcript:\n%s", out)
	}
}

func TestRun_GuessCongratulations(t *testing.T) {
	out, _ := mustRun(t, "game\n1\n70\nq\n", secret(70), 3)

	if !strings.Contains(out, "You guessed: 70\n"+guessing.Congratulations[3]+"\n") {
		t.Fatalf("expected congratulation #3:\n%s", out)
	}
}

func TestRun_FreshSecretEachGame(t *testing.T) {
	out, _ := mustRun(t, "game\n10\ngame\n10\n20\nq\n", secret(10), secret(20), 0)

	if strings.Count(out, guessing.InOneMessage) != 1 {
		t.Fatalf("expected only the first game to be won in one:\n%s", out)
	}
	if !strings.Contains(out, "You guessed: 10\nToo small!\n") {
		t.Fatalf("second game must use its own secret:\n%s", out)
	}
}

func TestRun_ToolsConversionsReturnToLab(t *testing.T) {
	input := "tools\n1\n1\n98.6\n1\n2\n100\n1\n2\nwarm\nnope\nq\n"
	out, _ := mustRun(t, input)

	for _, want := range []string{
		"Please enter your Fahrenheit temperature in the form of an integer:\n98.6 Fahrenheit = 37.00296 Celsius\n",
		"Please enter your Celsius temperature in the form of an integer:\n100 Celsius = 212 Fahrenheit\n",
		"0 Celsius = 32 Fahrenheit\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	// tres conversiones + la entrada inicial = cuatro veces el laboratorio
	if n := strings.Count(out, "Reee-OW, welcome to my lab!"); n != 4 {
		t.Fatalf("expected lab shown 4 times, got %d:\n%s", n, out)
	}
	rest := after(t, out, "You chose to: nope\n")
	if !strings.Contains(rest, menuPrompt) {
		t.Fatalf("unknown lab choice must return to main menu:\n%s", rest)
	}
}

func TestRun_ToolsUnknownUnitGoesToMainMenu(t *testing.T) {
	out, _ := mustRun(t, "tools\n1\n3\nq\n")

	rest := after(t, out, "You chose to: 3\n")
	if strings.Contains(rest, "welcome to my lab") {
		t.Fatalf("unknown unit must not go back to the lab:\n%s", rest)
	}
	if !strings.Contains(rest, menuPrompt) {
		t.Fatalf("expected main menu:\n%s", rest)
	}
}

func TestRun_InputClosed(t *testing.T) {
	_, p, err := run(t, "feed\n")

	if !errors.Is(err, console.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if p.Happiness != 60 {
		t.Fatalf("expected pet state up to the failure, got %+v", p)
	}
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	if _, _, err := run(t, "status\nq"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := console.New(console.Options{In: strings.NewReader("q\n"), Out: &bytes.Buffer{}})
	if _, err := c.Run(ctx, newPet(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_LogsTransitions(t *testing.T) {
	var logs bytes.Buffer
	c := console.New(console.Options{
		In:     strings.NewReader("feed\nq\n"),
		Out:    &bytes.Buffer{},
		Logger: logger.New(logger.Options{Level: logger.Debug, Out: &logs}),
	})

	p := newPet(t)
	if _, err := c.Run(context.Background(), p); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := logs.String()
	for _, want := range []string{"from=menu", "to=feeding", "msg=session ended", "pet_id=" + p.ID} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in logs:\n%s", want, got)
		}
	}
}
