package emoji

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"carousel/internal/core"
)

// contextPattern maps a word-boundary regex to candidate emoji for a
// category. Patterns are evaluated in order; earlier matches claim their
// emoji first.
type contextPattern struct {
	pattern  *regexp.Regexp
	emojis   []string
	category string
}

var contextPatterns = []contextPattern{
	{regexp.MustCompile(`(?i)\b(fast|quick|speed|rapid|instant)\b`), []string{"🚀", "⚡", "💨"}, "speed"},
	{regexp.MustCompile(`(?i)\b(grow|increase|improve|boost|enhance)\b`), []string{"📈", "🚀", "💹"}, "growth"},
	{regexp.MustCompile(`(?i)\b(money|cash|profit|revenue|income)\b`), []string{"💰", "💵", "💸"}, "money"},
	{regexp.MustCompile(`(?i)\b(time|schedule|deadline|clock)\b`), []string{"⏰", "⏱️", "⌛"}, "time"},
	{regexp.MustCompile(`(?i)\b(idea|thought|brain|think|innovate)\b`), []string{"💡", "🧠", "✨"}, "idea"},
	{regexp.MustCompile(`(?i)\b(learn|study|education|teach|course)\b`), []string{"📚", "🎓", "✏️"}, "learning"},
	{regexp.MustCompile(`(?i)\b(warning|caution|alert|danger|risk)\b`), []string{"⚠️", "🚨", "❗"}, "warning"},
	{regexp.MustCompile(`(?i)\b(success|win|achieve|accomplish|victory)\b`), []string{"🎉", "🏆", "✅"}, "success"},
	{regexp.MustCompile(`(?i)\b(fail|error|mistake|wrong|problem)\b`), []string{"❌", "⛔", "🔴"}, "negative"},
	{regexp.MustCompile(`(?i)\b(tech|code|software|program|app)\b`), []string{"💻", "⚙️", "🔧"}, "technology"},
	{regexp.MustCompile(`(?i)\b(talk|speak|communicate|message|chat)\b`), []string{"💬", "📢", "🗣️"}, "communication"},
	{regexp.MustCompile(`(?i)\b(business|company|corporate|enterprise)\b`), []string{"💼", "🏢", "📊"}, "business"},
	{regexp.MustCompile(`(?i)\b(target|goal|aim|focus|objective)\b`), []string{"🎯", "🔍", "📍"}, "target"},
	{regexp.MustCompile(`(?i)\b(fire|hot|trending|viral|popular)\b`), []string{"🔥", "💥", "🌟"}, "fire"},
	{regexp.MustCompile(`(?i)\b(love|like|favorite|enjoy|passion)\b`), []string{"❤️", "💙", "💚"}, "heart"},
	{regexp.MustCompile(`(?i)\b(check|verify|confirm|validate|approve)\b`), []string{"✅", "✔️", "👌"}, "check"},
	{regexp.MustCompile(`(?i)\b(question|ask|wonder|curious|inquiry)\b`), []string{"❓", "🤔", "❔"}, "question"},
	{regexp.MustCompile(`(?i)\b(star|excellent|outstanding|amazing)\b`), []string{"⭐", "🌟", "✨"}, "star"},
	{regexp.MustCompile(`(?i)\b(work|job|career|professional|office)\b`), []string{"💼", "👔", "🏢"}, "work"},
	{regexp.MustCompile(`(?i)\b(creative|design|art|artistic|imagine)\b`), []string{"🎨", "✨", "🎭"}, "creative"},
	{regexp.MustCompile(`(?i)\b(data|analytics|stats|metrics|numbers)\b`), []string{"📊", "📈", "🔢"}, "data"},
	{regexp.MustCompile(`(?i)\b(secure|safe|protect|security|privacy)\b`), []string{"🔒", "🛡️", "🔐"}, "security"},
	{regexp.MustCompile(`(?i)\b(world|global|international|worldwide)\b`), []string{"🌍", "🌎", "🗺️"}, "world"},
	{regexp.MustCompile(`(?i)\b(team|people|group|community|together)\b`), []string{"👥", "🤝", "👨‍👩‍👧‍👦"}, "people"},
	{regexp.MustCompile(`(?i)\b(save|bookmark|remember|store)\b`), []string{"💾", "🔖", "📌"}, "save"},
	{regexp.MustCompile(`(?i)\b(share|post|publish|distribute)\b`), []string{"📤", "🔗", "📢"}, "share"},
	{regexp.MustCompile(`(?i)\b(follow|subscribe|join|connect)\b`), []string{"➕", "👉", "🔔"}, "follow"},
	{regexp.MustCompile(`(?i)\b(tip|advice|hint|suggestion|guide)\b`), []string{"💡", "📝", "👆"}, "tip"},
	{regexp.MustCompile(`(?i)\b(new|fresh|latest|recent|modern)\b`), []string{"🆕", "✨", "🌟"}, "new"},
	{regexp.MustCompile(`(?i)\b(stop|quit|end|finish|complete)\b`), []string{"🛑", "⏹️", "🏁"}, "stop"},
	{regexp.MustCompile(`(?i)\b(start|begin|launch|initiate)\b`), []string{"▶️", "🚀", "🎬"}, "start"},
	{regexp.MustCompile(`(?i)\b(power|strong|strength|mighty)\b`), []string{"💪", "⚡", "🔋"}, "power"},
	{regexp.MustCompile(`(?i)\b(key|important|essential|critical)\b`), []string{"🔑", "⭐", "❗"}, "key"},
}

// keywordEntry is a plain substring keyword with its candidate emoji. The
// table keeps a fixed order so scoring stays deterministic.
type keywordEntry struct {
	keyword string
	emojis  []string
}

// Keyword matching is substring-based on purpose, matching the keyword table
// of the original tool; only the regex table above uses word boundaries.
var keywordEmojis = []keywordEntry{
	{"success", []string{"🎉", "✅", "🏆", "💪", "⭐"}},
	{"growth", []string{"📈", "🚀", "🌱", "💹", "📊"}},
	{"money", []string{"💰", "💵", "💸", "🤑", "💳"}},
	{"time", []string{"⏰", "⏱️", "⌛", "🕐", "⏳"}},
	{"idea", []string{"💡", "🧠", "💭", "✨", "🎯"}},
	{"learning", []string{"📚", "🎓", "📖", "✏️", "🧑‍🎓"}},
	{"speed", []string{"🚀", "⚡", "💨", "🏃", "⏩"}},
	{"warning", []string{"⚠️", "🚨", "⛔", "❗", "🔴"}},
	{"positive", []string{"👍", "✅", "😊", "💚", "🎊"}},
	{"negative", []string{"❌", "👎", "😔", "⛔", "🔻"}},
	{"technology", []string{"💻", "⚙️", "🔧", "🖥️", "📱"}},
	{"communication", []string{"💬", "📢", "🗣️", "📞", "💌"}},
	{"business", []string{"💼", "📊", "💰", "🏢", "📈"}},
	{"target", []string{"🎯", "🔍", "👁️", "🎲", "📍"}},
	{"fire", []string{"🔥", "💥", "⚡", "✨", "🌟"}},
	{"heart", []string{"❤️", "💙", "💚", "💛", "💜"}},
	{"check", []string{"✅", "✔️", "☑️", "👌", "💯"}},
	{"question", []string{"❓", "🤔", "❔", "🧐", "💭"}},
	{"star", []string{"⭐", "🌟", "✨", "💫", "⚡"}},
	{"work", []string{"💼", "👔", "🏢", "📊", "⚙️"}},
	{"creative", []string{"🎨", "✨", "🎭", "🖌️", "💫"}},
	{"data", []string{"📊", "📈", "📉", "💹", "🔢"}},
	{"security", []string{"🔒", "🛡️", "🔐", "🔑", "🚨"}},
	{"world", []string{"🌍", "🌎", "🌏", "🗺️", "🌐"}},
	{"people", []string{"👥", "👫", "👨‍👩‍👧‍👦", "🤝", "👪"}},
	{"calendar", []string{"📅", "📆", "🗓️", "⏰", "📋"}},
	{"email", []string{"📧", "✉️", "📨", "📬", "💌"}},
	{"phone", []string{"📱", "📞", "☎️", "📲", "💬"}},
	{"home", []string{"🏠", "🏡", "🏘️", "🏢", "🏰"}},
	{"food", []string{"🍕", "🍔", "🍟", "🥗", "🍱"}},
	{"health", []string{"💊", "🏥", "⚕️", "🩺", "💉"}},
	{"fitness", []string{"💪", "🏋️", "🏃", "🤸", "🧘"}},
	{"travel", []string{"✈️", "🚗", "🚢", "🗺️", "🧳"}},
	{"music", []string{"🎵", "🎶", "🎸", "🎹", "🎤"}},
	{"video", []string{"🎬", "📹", "🎥", "📽️", "🎞️"}},
	{"image", []string{"📸", "📷", "🖼️", "🎨", "🌄"}},
	{"document", []string{"📄", "📃", "📋", "📝", "📑"}},
	{"folder", []string{"📁", "📂", "🗂️", "📚", "📦"}},
	{"link", []string{"🔗", "⛓️", "📎", "🔐", "🌐"}},
	{"search", []string{"🔍", "🔎", "🕵️", "🔬", "🔭"}},
	{"tools", []string{"🔧", "🔨", "⚙️", "🛠️", "⚡"}},
	{"chart", []string{"📊", "📈", "📉", "💹", "📋"}},
	{"trophy", []string{"🏆", "🥇", "🥈", "🥉", "🎖️"}},
	{"gift", []string{"🎁", "🎀", "🎊", "🎉", "🎈"}},
}

// defaultEmojis are the fallback suggestions when nothing in the text
// matches either table.
var defaultEmojis = []string{"✨", "💡", "🎯"}

type scoredSuggestion struct {
	core.EmojiSuggestion
	score int
}

// SuggestForText returns at most 3 emoji suggestions for the text, ordered
// by descending relevance, with no duplicate emoji. The function is pure:
// identical input always yields identical output.
func SuggestForText(text string) []core.EmojiSuggestion {
	textLower := strings.ToLower(text)
	var suggestions []scoredSuggestion
	used := make(map[string]bool)

	for _, cp := range contextPatterns {
		if !cp.pattern.MatchString(text) {
			continue
		}
		for i, e := range cp.emojis {
			if used[e] {
				continue
			}
			suggestions = append(suggestions, scoredSuggestion{
				EmojiSuggestion: core.EmojiSuggestion{
					Emoji:  e,
					Reason: fmt.Sprintf("Matches %s context", cp.category),
				},
				score: 10 - i,
			})
			used[e] = true
		}
	}

	for _, ke := range keywordEmojis {
		if !strings.Contains(textLower, ke.keyword) {
			continue
		}
		// Only the first two emoji per keyword are considered.
		for i, e := range ke.emojis[:2] {
			if used[e] {
				continue
			}
			suggestions = append(suggestions, scoredSuggestion{
				EmojiSuggestion: core.EmojiSuggestion{
					Emoji:  e,
					Reason: fmt.Sprintf("Related to %q", ke.keyword),
				},
				score: 5 - i,
			})
			used[e] = true
		}
	}

	if len(suggestions) == 0 {
		for i, e := range defaultEmojis {
			suggestions = append(suggestions, scoredSuggestion{
				EmojiSuggestion: core.EmojiSuggestion{Emoji: e, Reason: "General purpose"},
				score:           3 - i,
			})
		}
	}

	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].score > suggestions[b].score
	})

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	result := make([]core.EmojiSuggestion, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.EmojiSuggestion
	}
	return result
}

// byType holds curated emoji pools per slide type for manual selection.
var byType = map[core.SlideType][]string{
	core.SlideHook:    {"🎯", "💡", "⚡", "🚀", "✨", "👀", "🔥", "💥", "🎬", "🌟"},
	core.SlideContent: {"📌", "💭", "📝", "✏️", "📊", "🔍", "💬", "🎨", "⚙️", "🔧"},
	core.SlideCTA:     {"👉", "💬", "❤️", "🔖", "💾", "✅", "📤", "🔔", "👆", "➡️"},
}

// ByType returns the curated emoji pool for a slide type.
func ByType(t core.SlideType) []string {
	return byType[t]
}

// EnhanceText prepends or appends an emoji to the first or last line of the
// text. Position is "start" or "end"; anything else is treated as "start".
func EnhanceText(text, emoji, position string) string {
	lines := strings.Split(text, "\n")
	if position == "end" {
		lines[len(lines)-1] = lines[len(lines)-1] + " " + emoji
	} else {
		lines[0] = emoji + " " + lines[0]
	}
	return strings.Join(lines, "\n")
}
