package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ExecEngine drives an espeak-ng compatible command line tool.
type ExecEngine struct {
	// Command is the executable, "espeak-ng" when empty.
	Command string

	mu      sync.Mutex
	current context.CancelFunc
}

func (e *ExecEngine) command() string {
	if e.Command == "" {
		return "espeak-ng"
	}
	return e.Command
}

// Voices runs "<command> --voices" and parses its table.
func (e *ExecEngine) Voices(ctx context.Context) ([]Voice, error) {
	out, err := exec.CommandContext(ctx, e.command(), "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("speech: list voices: %w", err)
	}
	return parseVoices(out), nil
}

// Say speaks text and waits for it to finish. Starting a new utterance stops
// the previous one.
func (e *ExecEngine) Say(ctx context.Context, text, lang string, voice *Voice) error {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	if e.current != nil {
		e.current()
	}
	e.current = cancel
	e.mu.Unlock()
	defer cancel()

	name := lang
	if voice != nil {
		switch {
		case voice.ID != "":
			name = voice.ID
		case voice.Name != "":
			name = voice.Name
		}
	}
	cmd := exec.CommandContext(ctx, e.command(), "-v", name, "--", text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("speech: %s: %w", e.command(), err)
	}
	return nil
}

// parseVoices reads espeak-ng's voice table:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 2)
func parseVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 {
			continue
		}
		voices = append(voices, Voice{Lang: fields[1], Name: fields[3], ID: fields[4]})
	}
	return voices
}
