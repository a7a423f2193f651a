package templates

import (
	"strings"

	"carousel/internal/core"
)

// Fill substitutes the value into every %s placeholder of a copy template.
// Plain replacement is used instead of fmt so user text containing percent
// signs cannot corrupt the output.
func Fill(template, value string) string {
	return strings.ReplaceAll(template, "%s", value)
}

// The copy tables below are keyed by tone and platform so a missing
// combination is a compile-time concern. Lookups for an unknown platform fall
// back to the Instagram column; that fallback is deliberate policy, not an
// accident of map access.

// toneTable is a fully populated tone x platform table of copy variants.
type toneTable map[core.Tone]map[core.Platform][]string

// lookup resolves a tone/platform cell with the Instagram fallback policy.
func (t toneTable) lookup(tone core.Tone, platform core.Platform) []string {
	byPlatform, ok := t[tone]
	if !ok {
		byPlatform = t[core.ToneProfessional]
	}
	if options, ok := byPlatform[platform]; ok {
		return options
	}
	return byPlatform[core.PlatformInstagram]
}

// hooks are first-slide templates. Each embeds the extracted title via %s.
var hooks = toneTable{
	core.ToneProfessional: {
		core.PlatformInstagram: {
			"Key Insight:\n\n%s",
			"Critical Analysis:\n\n%s",
			"Industry Perspective:\n\n%s",
			"Essential Knowledge:\n\n%s",
		},
		core.PlatformLinkedIn: {
			"Professional Insight:\n\n%s",
			"Industry Analysis:\n\n%s",
			"Strategic Perspective:\n\n%s",
			"Critical Takeaway:\n\n%s",
		},
		core.PlatformTikTok: {
			"Professional Insight:\n\n%s",
			"Industry Knowledge:\n\n%s",
			"Expert Perspective:\n\n%s",
			"Key Learning:\n\n%s",
		},
	},
	core.ToneCasual: {
		core.PlatformInstagram: {
			"🎯 Let's talk about:\n\n%s",
			"💡 Here's the thing:\n\n%s",
			"✨ Real talk:\n\n%s",
			"🔥 Stop scrolling!\n\n%s",
		},
		core.PlatformLinkedIn: {
			"Let's discuss:\n\n%s",
			"My take on:\n\n%s",
			"Here's what I think:\n\n%s",
			"Quick thought:\n\n%s",
		},
		core.PlatformTikTok: {
			"⚡ Wait, hear me out...\n\n%s",
			"🎬 Quick one:\n\n%s",
			"💥 You gotta see this:\n\n%s",
			"🌟 Listen up:\n\n%s",
		},
	},
	core.ToneInspirational: {
		core.PlatformInstagram: {
			"✨ Transform Your Mindset:\n\n%s",
			"💪 Empower Yourself:\n\n%s",
			"🌟 Discover Your Potential:\n\n%s",
			"🚀 Unlock Your Future:\n\n%s",
		},
		core.PlatformLinkedIn: {
			"Transform Your Career:\n\n%s",
			"Unlock Your Potential:\n\n%s",
			"Elevate Your Success:\n\n%s",
			"Achieve Excellence:\n\n%s",
		},
		core.PlatformTikTok: {
			"✨ Change Your Life:\n\n%s",
			"💪 Level Up:\n\n%s",
			"🌟 Manifest Success:\n\n%s",
			"🚀 Dream Bigger:\n\n%s",
		},
	},
}

// ctas are final-slide templates. No placeholder, used verbatim.
var ctas = toneTable{
	core.ToneProfessional: {
		core.PlatformInstagram: {
			"Found this valuable?\n\nSave for reference\nShare with your network\nFollow for expert insights",
			"Key Takeaways:\n\nBookmark this content\nShare with colleagues\nConnect for more analysis",
			"Action Steps:\n\n✓ Save this post\n✓ Share with your team\n✓ Follow for industry insights",
			"Your Perspective:\n\nComment your thoughts below\nShare with your professional network\nFollow for more expertise",
		},
		core.PlatformLinkedIn: {
			"Valuable insights?\n\n♻️ Repost to help your network\n💭 Share your professional perspective\n🔔 Follow for industry analysis",
			"What is your take?\n\nComment your experience\nConnect for networking\nShare with colleagues",
			"Found this useful?\n\n✓ Like to bookmark\n✓ Follow for expert content\n✓ Share your insights below",
			"Your turn:\n\nWhat would you add?\nComment your perspective\nRepost for your network",
		},
		core.PlatformTikTok: {
			"Valuable content?\n\nLike to save\nFollow for expert tips\nShare your thoughts",
			"Learn something new?\n\nComment below\nFollow for more insights\nShare with others",
			"Found this useful?\n\nSave for reference\nFollow for expertise\nShare with your network",
			"Your perspective?\n\nLike & follow\nComment your thoughts\nShare this knowledge",
		},
	},
	core.ToneCasual: {
		core.PlatformInstagram: {
			"💬 Save this for later!\n\nFollow for more tips ✨",
			"❤️ Found this helpful?\n\nShare with someone who needs this!",
			"✅ Which tip resonated with you?\n\nComment below! 👇",
			"🔖 Bookmark this post!\n\nFollow for daily insights 🚀",
		},
		core.PlatformLinkedIn: {
			"Found this valuable?\n\n♻️ Repost to help your network\n💭 Share your thoughts below",
			"What do you think?\n\nComment your experience 👇\nConnect for more insights",
			"Helpful?\n\n✅ Like to save\n🔔 Follow for more\n💬 Share your thoughts",
			"Your turn!\n\nWhat would you add to this list?\nComment below 👇",
		},
		core.PlatformTikTok: {
			"❤️ Like if you learned something new!\n\n👉 Follow for more",
			"💬 Which one surprised you?\n\nComment below! ⬇️",
			"🔥 Save this for later!\n\nShare with a friend 💫",
			"✨ Follow for daily tips!\n\nLike & save this 🎯",
		},
	},
	core.ToneInspirational: {
		core.PlatformInstagram: {
			"✨ Ready to transform?\n\nSave this for motivation\nShare to inspire others\nFollow for daily empowerment 💪",
			"🌟 Your journey starts now!\n\nBookmark this wisdom\nSpread the inspiration\nJoin our community ❤️",
			"💫 Believe in yourself!\n\nSave for tough days\nShare with someone who needs this\nFollow for uplifting content 🚀",
			"🔥 You have got this!\n\nSave this reminder\nInspire your friends\nFollow for motivation ✨",
		},
		core.PlatformLinkedIn: {
			"Ready to elevate your career?\n\n♻️ Share this inspiration\n💭 Tag someone who needs this\n🔔 Follow for empowering content",
			"Transform your professional life:\n\nSave for motivation\nShare with your network\nConnect for growth",
			"Unlock your potential:\n\n✓ Bookmark this wisdom\n✓ Share to inspire others\n✓ Follow for success strategies",
			"Your success journey:\n\nComment your goals\nShare to motivate others\nFollow for empowerment",
		},
		core.PlatformTikTok: {
			"✨ Believe in yourself!\n\nLike to remember\nFollow for daily motivation\nShare the inspiration 💪",
			"🌟 You can do this!\n\nSave for tough days\nFollow for empowerment\nSpread the positivity ❤️",
			"💫 Dream big!\n\nLike & save\nFollow for inspiration\nTag someone who needs this 🚀",
			"🔥 Keep going!\n\nSave this motivation\nFollow for daily fire\nShare with your tribe ✨",
		},
	},
}

// captionIntros open a shareable caption. Each embeds the title via %s.
var captionIntros = toneTable{
	core.ToneProfessional: {
		core.PlatformInstagram: {
			"%s\n\nKey insights in this carousel. Swipe to learn more →",
			"Professional analysis: %s\n\nSave for reference 📊",
			"%s\n\nExpert breakdown inside. View all slides →",
		},
		core.PlatformLinkedIn: {
			"%s\n\nComprehensive analysis in this carousel →",
			"Professional perspective on %s\n\nSwipe through for detailed insights.",
			"%s: Strategic Overview\n\nExplore the full breakdown below →",
		},
		core.PlatformTikTok: {
			"%s\n\nProfessional insights ahead →",
			"Expert take: %s\n\nWatch for key points 📊",
			"%s\n\nIndustry analysis inside →",
		},
	},
	core.ToneCasual: {
		core.PlatformInstagram: {
			"✨ %s\n\nSwipe through to learn more! 👉",
			"✨ Quick guide on %s\n\nSave this for later! 🔖",
			"✨ Everything you need to know about %s 💡",
		},
		core.PlatformLinkedIn: {
			"%s\n\nKey insights in this carousel →",
			"Sharing my thoughts on %s\n\nSwipe through for the full breakdown.",
			"%s: A comprehensive overview\n\nCheck out the slides below.",
		},
		core.PlatformTikTok: {
			"✨ %s\n\nWatch till the end! 🎬",
			"✨ Quick lesson: %s\n\nSave & share! 💫",
			"✨ %s explained ⚡",
		},
	},
	core.ToneInspirational: {
		core.PlatformInstagram: {
			"✨ %s\n\nTransform your mindset. Swipe for inspiration! 💪",
			"🌟 %s\n\nYour journey to success starts here →",
			"💫 %s\n\nUnlock your potential. Save this! 🚀",
		},
		core.PlatformLinkedIn: {
			"%s\n\nElevate your career with these insights →",
			"Transform your professional life: %s\n\nSwipe for empowering strategies.",
			"%s: Your Path to Success\n\nDiscover game-changing wisdom below →",
		},
		core.PlatformTikTok: {
			"✨ %s\n\nBelieve in yourself! Watch now 💪",
			"🌟 %s\n\nYour transformation starts here →",
			"💫 %s\n\nDream big! Save this 🚀",
		},
	},
}

// expansions rewrite a very short idea into a full sentence. %s is the idea.
var expansions = toneTable{
	core.ToneProfessional: {
		core.PlatformInstagram: {
			"%s: A critical factor for professional success in today's competitive landscape",
			"Understanding %s can transform your approach to business strategy and execution",
			"%s represents a fundamental shift in how industry leaders approach modern challenges",
		},
		core.PlatformLinkedIn: {
			"%s: Key insights for professional development and career advancement",
			"The impact of %s on organizational efficiency and strategic outcomes",
			"%s - An essential consideration for business leaders and decision makers",
		},
		core.PlatformTikTok: {
			"%s: What every professional needs to know right now",
			"%s - The game-changer you've been missing in your career",
			"Quick breakdown: %s and why it matters for your professional growth",
		},
	},
	core.ToneCasual: {
		core.PlatformInstagram: {
			"Let's talk about %s - it's actually way more important than you think!",
			"%s is something everyone should know about (trust me on this one)",
			"Here's why %s matters more than ever in today's world",
		},
		core.PlatformLinkedIn: {
			"%s: My take on why this matters for your career journey",
			"Thoughts on %s and its real-world impact on professionals",
			"%s - Breaking down what this means for you",
		},
		core.PlatformTikTok: {
			"%s - and why you need to pay attention to this!",
			"Let me explain %s in a way that actually makes sense",
			"%s: The thing nobody talks about but everyone should know",
		},
	},
	core.ToneInspirational: {
		core.PlatformInstagram: {
			"%s: Your pathway to unlocking unprecedented personal growth and success",
			"Transform your life through understanding %s - your journey starts here",
			"%s holds the key to manifesting your greatest potential and dreams",
		},
		core.PlatformLinkedIn: {
			"%s: Elevate your career by mastering this transformative concept",
			"Unlock your professional potential through the power of %s",
			"%s - The catalyst for your next breakthrough in career excellence",
		},
		core.PlatformTikTok: {
			"%s will change your life - here's how to harness its power",
			"Your transformation starts with %s - watch this to level up",
			"%s: The secret to unlocking your best self and achieving greatness",
		},
	},
}

// completions are clauses appended to a hedging or under-detailed thought.
// Each begins with a leading space so it can be concatenated directly.
var completions = map[core.Tone][]string{
	core.ToneProfessional: {
		" This approach delivers measurable results through systematic implementation and strategic alignment.",
		" Research demonstrates significant improvements in efficiency and outcome quality.",
		" Industry leaders consistently achieve better results by applying these principles.",
	},
	core.ToneCasual: {
		" and honestly, once you try it, you'll wonder why you didn't start sooner!",
		" - it's one of those things that just makes everything so much easier.",
		" and the best part? It actually works in real life, not just in theory.",
	},
	core.ToneInspirational: {
		" Embrace this mindset and watch as new opportunities unfold before you.",
		" Your commitment to this will transform not just your work, but your entire life.",
		" Believe in this process and you'll unlock potential you never knew existed.",
	},
}

// bulletContexts enrich a terse bullet point. %s is the original bullet.
var bulletContexts = map[core.Tone][]string{
	core.ToneProfessional: {
		"%s - proven to increase efficiency and deliver measurable outcomes",
		"%s - a data-driven approach that leading organizations implement",
		"%s - strategic implementation ensures consistent results",
	},
	core.ToneCasual: {
		"%s - seriously, this one's a game-changer",
		"%s - you'll love how easy this makes things",
		"%s - trust me, this actually works",
	},
	core.ToneInspirational: {
		"%s - your breakthrough moment starts here",
		"%s - embrace this to unlock your true potential",
		"%s - transform your journey with this powerful insight",
	},
}

// hookVariationPrefixes replace the leading title line of a hook slide when
// generating the "Hook Variation" alternate.
var hookVariationPrefixes = map[core.Tone]string{
	core.ToneProfessional:  "Critical Alert:",
	core.ToneCasual:        "🔥 Stop Scrolling!",
	core.ToneInspirational: "✨ Transform Your Life:",
}

// ctaVariations replace the CTA slide wholesale in the "CTA Variation".
var ctaVariations = map[core.Tone]string{
	core.ToneProfessional:  "Action Steps:\n\n✓ Save for reference\n✓ Share with your network\n✓ Follow for expert insights\n✓ Comment your perspective",
	core.ToneCasual:        "💾 Save this for later!\n\n👉 Share with someone who needs this\n\n✨ Follow for more content like this\n\n❤️ Drop a comment below!",
	core.ToneInspirational: "✨ Ready to Transform?\n\n💪 Save this motivation\n🌟 Inspire others - share it!\n🚀 Follow for daily empowerment\n❤️ Tag someone who needs this",
}

// Hooks returns the hook templates for a tone/platform. Templates embed the
// slide title via a %s placeholder.
func Hooks(tone core.Tone, platform core.Platform) []string {
	return hooks.lookup(tone, platform)
}

// CTAs returns the call-to-action templates for a tone/platform.
func CTAs(tone core.Tone, platform core.Platform) []string {
	return ctas.lookup(tone, platform)
}

// CaptionIntros returns the caption opener templates for a tone/platform.
func CaptionIntros(tone core.Tone, platform core.Platform) []string {
	return captionIntros.lookup(tone, platform)
}

// Expansions returns the short-idea rewrite templates for a tone/platform.
func Expansions(tone core.Tone, platform core.Platform) []string {
	return expansions.lookup(tone, platform)
}

// Completions returns the thought-completion clauses for a tone.
func Completions(tone core.Tone) []string {
	if c, ok := completions[tone]; ok {
		return c
	}
	return completions[core.ToneProfessional]
}

// BulletContexts returns the bullet enrichment templates for a tone.
func BulletContexts(tone core.Tone) []string {
	if c, ok := bulletContexts[tone]; ok {
		return c
	}
	return bulletContexts[core.ToneProfessional]
}

// HookVariationPrefix returns the replacement title line for a tone.
func HookVariationPrefix(tone core.Tone) string {
	if p, ok := hookVariationPrefixes[tone]; ok {
		return p
	}
	return hookVariationPrefixes[core.ToneProfessional]
}

// CTAVariation returns the wholesale CTA replacement block for a tone.
func CTAVariation(tone core.Tone) string {
	if c, ok := ctaVariations[tone]; ok {
		return c
	}
	return ctaVariations[core.ToneProfessional]
}
