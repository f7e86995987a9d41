package conversation

import (
	"fmt"
	"strings"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/estimate"
	"maleri_backend/internal/intent"
)

// Swedish prompts, one per dialogue step.
const (
	promptProjectName  = "Hej! Vad heter projektet?"
	promptRoomName     = "Vilket rum gäller det?"
	promptMeasurements = "Ange rummets mått, till exempel \"4 gånger 5 gånger 2,5\"."
	promptTasks        = "Vilka arbeten ska utföras? Säg \"klar\" när du är färdig."
	promptDone         = "Kalkylen är klar. Starta en ny konversation för nästa rum."
)

// doneWords end the task collection loop.
var doneWords = []string{"klar", "färdig", "det var allt"}

// confirmWords accept the estimate in the confirmation step.
var confirmWords = []string{"ja", "okej", "ok", "bekräfta", "det stämmer", "stämmer"}

// Reply is the machine's answer to one user input: the next prompt, the
// step the conversation is now in and the transcript entry for the prompt.
type Reply struct {
	Prompt string          `json:"prompt"`
	Step   Step            `json:"step"`
	Entry  TranscriptEntry `json:"transcriptEntry"`
}

// Machine advances a conversation state through the estimate dialogue.
// It holds no per-conversation state itself; everything lives in State so
// a conversation can hop between processes via the session store.
type Machine struct {
	catalog *catalog.Catalog
	cfg     estimate.PricingConfig
}

// NewMachine creates a dialogue machine over one catalog snapshot.
func NewMachine(cat *catalog.Catalog, cfg estimate.PricingConfig) *Machine {
	return &Machine{catalog: cat, cfg: cfg}
}

// Greeting is the opening prompt for a brand new conversation.
func (m *Machine) Greeting(st *State) Reply {
	return m.reply(st, promptProjectName)
}

// ProcessInput feeds one user input to the conversation. Transitions are
// strictly forward; input that fails to parse re-emits the current step's
// prompt and stays put. A finished conversation accepts no further input.
func (m *Machine) ProcessInput(st *State, input string) Reply {
	text := strings.TrimSpace(input)
	if st.Step != StepDone {
		st.record("user", text)
	}

	switch st.Step {
	case StepAwaitingProjectName:
		if text == "" {
			return m.reply(st, "Jag uppfattade inget namn. Vad heter projektet?")
		}
		st.ProjectName = text
		st.Step = StepAwaitingRoomName
		return m.reply(st, promptRoomName)

	case StepAwaitingRoomName:
		if text == "" {
			return m.reply(st, "Jag uppfattade inget rum. "+promptRoomName)
		}
		st.RoomName = text
		st.Step = StepAwaitingMeasurements
		return m.reply(st, promptMeasurements)

	case StepAwaitingMeasurements:
		geo, err := ParseMeasurements(text)
		if err != nil {
			return m.reply(st, "Jag förstod inte måtten. "+promptMeasurements)
		}
		st.Geometry = geo
		st.Step = StepCollectingTasks
		return m.reply(st, promptTasks)

	case StepCollectingTasks:
		if isDoneWord(text) {
			st.Step = StepAwaitingConfirmation
			return m.reply(st, m.confirmationPrompt(st))
		}
		return m.collectTask(st, text)

	case StepAwaitingConfirmation:
		if isConfirmWord(text) {
			st.Step = StepDone
			return m.reply(st, promptDone)
		}
		return m.reply(st, m.confirmationPrompt(st))

	default: // StepDone
		return Reply{Prompt: promptDone, Step: StepDone}
	}
}

// Summarize builds the condensed view of the conversation so far.
func (m *Machine) Summarize(st *State) Summary {
	return Summary{
		ProjectName: st.ProjectName,
		RoomName:    st.RoomName,
		Geometry:    st.Geometry,
		Tasks:       append([]string(nil), st.Utterances...),
		LineItems:   append([]estimate.LineItem(nil), st.LineItems...),
		Errors:      append([]string(nil), st.Errors...),
		Totals:      estimate.ComputeTotals(st.LineItems, m.cfg),
		Step:        st.Step,
	}
}

func (m *Machine) collectTask(st *State, text string) Reply {
	asm := estimate.NewAssembler(m.catalog, m.cfg)
	items, errs := asm.ProcessUtterance(text, st.Geometry)

	if len(items) > 0 {
		st.Utterances = append(st.Utterances, text)
		st.LineItems = append(st.LineItems, items...)
	}
	st.Errors = append(st.Errors, errs...)

	switch {
	case len(items) == 0:
		return m.reply(st, "Jag kunde inte koppla det till något arbete. Prova att säga det på ett annat sätt, eller säg \"klar\".")
	case len(errs) > 0:
		return m.reply(st, fmt.Sprintf("Jag lade till %d arbete(n), men förstod inte allt. Fler arbeten?", len(items)))
	default:
		return m.reply(st, fmt.Sprintf("Jag lade till %d arbete(n). Fler arbeten?", len(items)))
	}
}

func (m *Machine) confirmationPrompt(st *State) string {
	var b strings.Builder
	b.WriteString("Här är kalkylen för ")
	if st.RoomName != "" {
		b.WriteString(st.RoomName)
	} else {
		b.WriteString("rummet")
	}
	b.WriteString(":\n")

	if len(st.LineItems) == 0 {
		b.WriteString("Inga arbeten registrerade.\n")
	}
	for _, item := range st.LineItems {
		fmt.Fprintf(&b, "- %s: %.2f %s à %.2f = %.2f kr\n",
			item.TaskName, item.Quantity, unitLabel(item.Unit), item.UnitPrice, item.Subtotal)
	}

	totals := estimate.ComputeTotals(st.LineItems, m.cfg)
	fmt.Fprintf(&b, "Summa: %.2f kr, påslag: %.2f kr, totalt: %.2f kr.\n", totals.Subtotal, totals.Markup, totals.GrandTotal)
	b.WriteString("Stämmer detta? Svara ja för att bekräfta.")
	return b.String()
}

func (m *Machine) reply(st *State, prompt string) Reply {
	entry := st.record("assistant", prompt)
	return Reply{Prompt: prompt, Step: st.Step, Entry: entry}
}

func isDoneWord(text string) bool {
	return matchesAny(text, doneWords)
}

func isConfirmWord(text string) bool {
	return matchesAny(text, confirmWords)
}

func matchesAny(text string, words []string) bool {
	normalized := intent.Normalize(text)
	normalized = strings.TrimRight(normalized, ".!")
	for _, word := range words {
		if normalized == word {
			return true
		}
	}
	return false
}

func unitLabel(u catalog.Unit) string {
	switch u {
	case catalog.UnitArea:
		return "m²"
	case catalog.UnitLength:
		return "m"
	default:
		return "st"
	}
}
