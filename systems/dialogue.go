package systems

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var markupTag = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes HTML-like tags and collapses whitespace.
func StripMarkup(text string) string {
	text = markupTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// DialogueGate shows one dialogue at a time and suspends player motion
// while it is open.
type DialogueGate struct {
	world donburi.World
	entry *donburi.Entry
}

func NewDialogueGate(e *ecs.ECS) *DialogueGate {
	entry, ok := components.Dialogue.First(e.World)
	if !ok {
		entry = archetypes.Dialogue.Spawn(e)
	}
	return &DialogueGate{world: e.World, entry: entry}
}

// Open shows text and calls onClose when the dialogue is dismissed.
// It reports false and does nothing if a dialogue is already open.
func (g *DialogueGate) Open(text string, onClose func()) bool {
	d := components.Dialogue.Get(g.entry)
	if d.Open {
		return false
	}

	d.Open = true
	d.Text = StripMarkup(text)
	d.OnClose = onClose
	d.Revealed = 0
	runes := float32(utf8.RuneCountInString(d.Text))
	d.Reveal = gween.New(0, runes, runes/cfg.DialogueBox.CharsPerSecond, ease.Linear)

	g.setInDialogue(true)
	return true
}

// Close dismisses the dialogue. onClose runs once, before motion resumes.
func (g *DialogueGate) Close() {
	d := components.Dialogue.Get(g.entry)
	if !d.Open {
		return
	}

	onClose := d.OnClose
	d.Open = false
	d.OnClose = nil
	d.Reveal = nil
	if onClose != nil {
		onClose()
	}
	d.Text = ""
	d.Revealed = 0
	g.setInDialogue(false)
}

func (g *DialogueGate) IsOpen() bool {
	return components.Dialogue.Get(g.entry).Open
}

// Text returns the full text and the part revealed so far.
func (g *DialogueGate) Text() (full, shown string) {
	d := components.Dialogue.Get(g.entry)
	runes := []rune(d.Text)
	n := min(d.Revealed, len(runes))
	return d.Text, string(runes[:n])
}

// Update advances the reveal and handles the close action. A close press
// during the reveal shows the full text first.
func (g *DialogueGate) Update(e *ecs.ECS) {
	d := components.Dialogue.Get(g.entry)
	if !d.Open {
		return
	}

	total := utf8.RuneCountInString(d.Text)
	if d.Reveal != nil {
		current, done := d.Reveal.Update(float32(cfg.C.TickSeconds))
		d.Revealed = int(current)
		if done {
			d.Revealed = total
			d.Reveal = nil
		}
	}

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if !components.Input.Get(inputEntry).JustPressed(cfg.ActionCloseDialogue) {
		return
	}
	if d.Revealed < total {
		d.Revealed = total
		d.Reveal = nil
		return
	}
	g.Close()
}

func (g *DialogueGate) setInDialogue(v bool) {
	playerEntry, ok := tags.Player.First(g.world)
	if !ok {
		return
	}
	components.Player.Get(playerEntry).InDialogue = v
}
