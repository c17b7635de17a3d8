package tips

import "github.com/recenterhq/driftcheck/pkg/models"

// Tip tables. Client and server ship the same tables and must agree on every
// cell, so edits here are contract changes, not copy tweaks. Intensity
// escalates with category: maintenance -> consistency -> rebuilding ->
// recovery -> load reduction.

// criticalLoadReduction is returned for every non-sleep dimension under
// critical drift. At that severity, shedding load beats dimension nuance.
var criticalLoadReduction = models.Tip{
	Focus:      "Immediate load reduction",
	Constraint: "Cancel or postpone every commitment that is not survival-level for the next 48 hours.",
	Choice:     "Pick the one obligation you will keep, everything else waits.",
}

// criticalSleepRestoration is the one dimension-specific critical tip.
var criticalSleepRestoration = models.Tip{
	Focus:      "Sleep restoration first",
	Constraint: "Protect a fixed 9-hour sleep window tonight: screens off, no alarms for anything optional.",
	Choice:     "Decide now whether tomorrow starts late or ends early, one of the two.",
}

var primary = map[models.Dimension]map[models.Category]models.Tip{
	models.DimEnergy: {
		models.CategoryAligned: {
			Focus:      "Energy maintenance",
			Constraint: "Keep one deliberate recovery break on your calendar every day this week.",
			Choice:     "Morning walk or afternoon pause, pick the one you will actually take.",
		},
		models.CategoryMild: {
			Focus:      "Energy preservation",
			Constraint: "End your working day at a fixed time for the next three days.",
			Choice:     "Choose the hardest task for your best two hours, or drop it entirely.",
		},
		models.CategoryModerate: {
			Focus:      "Energy rebuilding",
			Constraint: "Cut one recurring commitment this week and replace it with nothing.",
			Choice:     "Decide which drains you more, meetings or errands, and halve that one.",
		},
		models.CategoryHeavy: {
			Focus:      "Energy recovery",
			Constraint: "Take one full day this week with no obligations after midday.",
			Choice:     "Pick the day now and tell one person who will hold you to it.",
		},
		models.CategoryCritical: criticalLoadReduction,
	},
	models.DimSleep: {
		models.CategoryAligned: {
			Focus:      "Sleep maintenance",
			Constraint: "Keep your current wind-down routine unchanged for another week.",
			Choice:     "If anything moves, move bedtime earlier, never later.",
		},
		models.CategoryMild: {
			Focus:      "Sleep consistency",
			Constraint: "Same wake-up time every day for five days, weekends included.",
			Choice:     "Pick one: no screens after 22:00, or no caffeine after 14:00.",
		},
		models.CategoryModerate: {
			Focus:      "Sleep rebuilding",
			Constraint: "Move bedtime 30 minutes earlier and keep it there for a week.",
			Choice:     "Decide tonight: read in bed, or leave the phone in another room.",
		},
		models.CategoryHeavy: {
			Focus:      "Sleep recovery",
			Constraint: "Block a non-negotiable 8-hour sleep window for the next three nights.",
			Choice:     "Choose what gives way to protect it, the evening plan or the early start.",
		},
		models.CategoryCritical: criticalSleepRestoration,
	},
	models.DimStructure: {
		models.CategoryAligned: {
			Focus:      "Structure maintenance",
			Constraint: "Keep planning tomorrow in three lines before closing today.",
			Choice:     "Paper or app, whichever you checked most last week.",
		},
		models.CategoryMild: {
			Focus:      "Structure consistency",
			Constraint: "Start each day by writing the single most important task before anything else.",
			Choice:     "Pick a fixed planning moment: right after waking, or right after coffee.",
		},
		models.CategoryModerate: {
			Focus:      "Structure rebuilding",
			Constraint: "Time-box the first two hours of each day this week and ignore everything outside the box.",
			Choice:     "Decide which calendar is the source of truth and delete duplicates from the other.",
		},
		models.CategoryHeavy: {
			Focus:      "Structure recovery",
			Constraint: "Reduce your plan to one anchor activity per day, nothing more goes on the list.",
			Choice:     "Morning anchor or evening anchor, choose the time of day that still works.",
		},
		models.CategoryCritical: criticalLoadReduction,
	},
	models.DimInitiation: {
		models.CategoryAligned: {
			Focus:      "Starting momentum",
			Constraint: "Keep using your current first-step ritual for every new task this week.",
			Choice:     "If a task stalls twice, shrink it or schedule it, never just retry.",
		},
		models.CategoryMild: {
			Focus:      "Lowering the start threshold",
			Constraint: "Begin the day's hardest task with a 10-minute timer, stopping is allowed when it rings.",
			Choice:     "Pick tonight which task gets the timer tomorrow, not in the morning.",
		},
		models.CategoryModerate: {
			Focus:      "Rebuilding starts",
			Constraint: "Break tomorrow's first task into a step so small it fits in five minutes, do only that step before breakfast.",
			Choice:     "Choose one: start before checking any messages, or start after exactly one coffee.",
		},
		models.CategoryHeavy: {
			Focus:      "Start recovery",
			Constraint: "Commit to one five-minute start per day, count the start itself as the win.",
			Choice:     "Decide whether accountability helps you, and if so, tell one person your daily start.",
		},
		models.CategoryCritical: criticalLoadReduction,
	},
	models.DimEngagement: {
		models.CategoryAligned: {
			Focus:      "Engagement maintenance",
			Constraint: "Protect one distraction-free deep block this week at the time it worked before.",
			Choice:     "Keep notifications off during the block, or move the block, never both on.",
		},
		models.CategoryMild: {
			Focus:      "Engagement consistency",
			Constraint: "Single-task the first 45 minutes of each work session for three days.",
			Choice:     "Phone in the bag or tabs down to one window, pick your lever.",
		},
		models.CategoryModerate: {
			Focus:      "Engagement rebuilding",
			Constraint: "Pick one activity you used to enjoy and do it twice this week for 20 minutes, quality optional.",
			Choice:     "Alone or with someone, choose the version you are more likely to repeat.",
		},
		models.CategoryHeavy: {
			Focus:      "Engagement recovery",
			Constraint: "Drop the expectation of focus entirely, show up to one chosen activity per day without a goal.",
			Choice:     "Decide which single activity is worth showing up for this week.",
		},
		models.CategoryCritical: criticalLoadReduction,
	},
	models.DimSustainability: {
		models.CategoryAligned: {
			Focus:      "Pace maintenance",
			Constraint: "Keep one evening per week completely free, same evening as last week.",
			Choice:     "If work expands, trade within the week, never into the free evening.",
		},
		models.CategoryMild: {
			Focus:      "Pace preservation",
			Constraint: "Cap your daily task list at five items for the next five days.",
			Choice:     "When a sixth appears, pick which of the five it replaces, or it waits.",
		},
		models.CategoryModerate: {
			Focus:      "Pace rebuilding",
			Constraint: "Say no to every new commitment this week, no exceptions during the week itself.",
			Choice:     "Decide one standing obligation to renegotiate before Friday.",
		},
		models.CategoryHeavy: {
			Focus:      "Pace recovery",
			Constraint: "Halve your weekly commitments, write the removed half down so it stays visible, not active.",
			Choice:     "Choose whether the freed time goes to rest or to people, not to the backlog.",
		},
		models.CategoryCritical: criticalLoadReduction,
	},
}

// alternatives hold rotation candidates used when feedback on the primary tip
// goes net negative. Present only for the mid bands: under aligned there is
// nothing to fix, under critical the override is policy.
var alternatives = map[models.Dimension]map[models.Category][]models.Tip{
	models.DimEnergy: {
		models.CategoryMild: {
			{
				Focus:      "Energy via movement",
				Constraint: "Take a 15-minute outdoor walk before noon every day for three days.",
				Choice:     "Alone with a podcast, or with a person and no phone.",
			},
			{
				Focus:      "Energy via food rhythm",
				Constraint: "Eat lunch at the same time every day this week, away from your desk.",
				Choice:     "Prep the night before or buy it, remove the decision either way.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Energy audit",
				Constraint: "Rate each activity this week +1 or -1 for energy right after finishing it, for three days.",
				Choice:     "At day three, cut the single worst-rated activity or shrink it by half.",
			},
			{
				Focus:      "Energy through light",
				Constraint: "Get daylight within an hour of waking every day this week.",
				Choice:     "Balcony coffee or a walk around the block, pick the sustainable one.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "Minimum-dose recovery",
				Constraint: "Lie down for 20 undisturbed minutes once per day, no screen, no sleep required.",
				Choice:     "Midday or right after work, anchor it to the same slot daily.",
			},
			{
				Focus:      "Delegated load",
				Constraint: "Hand one recurring task to someone else or to no one this week.",
				Choice:     "Ask for help or let it drop, both are valid, choose one explicitly.",
			},
		},
	},
	models.DimSleep: {
		models.CategoryMild: {
			{
				Focus:      "Wind-down replacement",
				Constraint: "Swap the last 30 screen minutes before bed for anything analog, five nights.",
				Choice:     "Reading, stretching, or tidying tomorrow's desk, pick one and keep it.",
			},
			{
				Focus:      "Caffeine boundary",
				Constraint: "No caffeine after lunch for the next four days.",
				Choice:     "Replace the afternoon cup with tea or with a short walk.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Sleep pressure rebuild",
				Constraint: "No naps longer than 20 minutes this week, none at all after 16:00.",
				Choice:     "If the evening crash comes, go to bed early instead of pushing through.",
			},
			{
				Focus:      "Bedroom reset",
				Constraint: "Use the bed only for sleep this week: no laptop, no scrolling, no meals.",
				Choice:     "Charge the phone outside the room, or switch it to a dumb alarm clock.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "Anchor the wake-up",
				Constraint: "Fix only the wake-up time, same time daily including weekends, let bedtime float.",
				Choice:     "Pick the wake-up time you can honestly hold for seven days.",
			},
			{
				Focus:      "Worry unload",
				Constraint: "Write every open loop on paper 30 minutes before bed each night this week.",
				Choice:     "Keep the list by the bed or in the kitchen, just not in your head.",
			},
		},
	},
	models.DimStructure: {
		models.CategoryMild: {
			{
				Focus:      "Visible plan",
				Constraint: "Put tomorrow's top three tasks on a sticky note where you make coffee, every evening.",
				Choice:     "Handwritten note or lock-screen photo of it, whichever you will see first.",
			},
			{
				Focus:      "Calendar honesty",
				Constraint: "Block actual work time in the calendar, not just meetings, for three days.",
				Choice:     "Blocks of 50 or 90 minutes, choose the length that matches your attention.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Routine scaffolding",
				Constraint: "Attach your planning moment to an existing habit every day this week.",
				Choice:     "After brushing teeth or after the first coffee, pick the anchor that never skips.",
			},
			{
				Focus:      "Weekly skeleton",
				Constraint: "Set three fixed weekly anchors (same day, same hour) and build the rest around them.",
				Choice:     "Decide which anchor is untouchable even on a bad week.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "One-line days",
				Constraint: "Plan each day as a single sentence written the night before, nothing else counts as the plan.",
				Choice:     "If the sentence fails by noon, rewrite it smaller instead of abandoning the day.",
			},
			{
				Focus:      "External structure",
				Constraint: "Borrow structure from outside: one standing appointment or co-working block per day this week.",
				Choice:     "A person, a place, or a class, pick the kind of anchor that pulls you.",
			},
		},
	},
	models.DimInitiation: {
		models.CategoryMild: {
			{
				Focus:      "Two-minute openers",
				Constraint: "For every task you avoid, do only its first two minutes, then decide.",
				Choice:     "Continue or stop guilt-free, both outcomes count as a start.",
			},
			{
				Focus:      "Prepared starts",
				Constraint: "Lay out tomorrow's first task physically the evening before, five days in a row.",
				Choice:     "Open file on screen or materials on the desk, make starting the default.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Body-first starts",
				Constraint: "Precede the hardest start of the day with 10 jumping jacks or a fast stair climb.",
				Choice:     "Pick the physical trigger you can do anywhere, keep it all week.",
			},
			{
				Focus:      "Start with company",
				Constraint: "Do your hardest start alongside someone else twice this week, in person or on a call.",
				Choice:     "Pick the person today and send the invite before the day ends.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "Shrink to laughable",
				Constraint: "Make the daily step so small it feels absurd (open the document, put on shoes), do only that.",
				Choice:     "If even the absurd step fails, halve it again rather than skipping the day.",
			},
			{
				Focus:      "Timed permission",
				Constraint: "Give yourself a fixed daily slot where starting is the only obligation, five minutes, then full permission to stop.",
				Choice:     "Same slot every day, morning or lunch, choose once and stop renegotiating.",
			},
		},
	},
	models.DimEngagement: {
		models.CategoryMild: {
			{
				Focus:      "Friction for distractions",
				Constraint: "Log out of the two stickiest apps on every device for three days.",
				Choice:     "Delete the apps or just sign out, pick the level you will keep.",
			},
			{
				Focus:      "Interest sampling",
				Constraint: "Spend 20 minutes on something purely curious twice this week, no productivity angle.",
				Choice:     "New or nostalgic, pick whichever pulls harder today.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Engagement through senses",
				Constraint: "Do one fully offline, hands-busy activity for 30 minutes twice this week.",
				Choice:     "Cooking, drawing, repair, or a walk without headphones, choose one.",
			},
			{
				Focus:      "Social re-entry",
				Constraint: "Have one unhurried conversation this week with no agenda and no phone on the table.",
				Choice:     "Pick the person who costs you the least activation energy.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "Passive-to-active nudge",
				Constraint: "Pair every passive scroll session with one tiny active step right after, for three days.",
				Choice:     "Message a friend, step outside, or stretch, pre-pick your default nudge.",
			},
			{
				Focus:      "One honest interest",
				Constraint: "Name the single thing that still sparks anything and put 15 minutes of it on the calendar daily.",
				Choice:     "Keep it private or share it, choose whichever protects it best.",
			},
		},
	},
	models.DimSustainability: {
		models.CategoryMild: {
			{
				Focus:      "Buffer building",
				Constraint: "Add 15 minutes of slack between consecutive commitments for three days.",
				Choice:     "Shorten the meetings or move them, the buffer itself is non-negotiable.",
			},
			{
				Focus:      "End-of-day shutdown",
				Constraint: "Close each workday with a two-minute shutdown note: done, open, tomorrow's first step.",
				Choice:     "Fixed shutdown time or fixed trigger (last meeting ends), pick one.",
			},
		},
		models.CategoryModerate: {
			{
				Focus:      "Commitment inventory",
				Constraint: "List every standing commitment and mark each keep, shrink, or drop, by Thursday.",
				Choice:     "Execute one drop this week, the hardest one or the easiest one, but one.",
			},
			{
				Focus:      "Recovery scheduling",
				Constraint: "Schedule recovery like meetings: two 30-minute blocks this week that cannot be booked over.",
				Choice:     "Guard them with a calendar block or with a person who checks, pick your guard.",
			},
		},
		models.CategoryHeavy: {
			{
				Focus:      "Minimum viable week",
				Constraint: "Define the three things that make next week survivable and drop everything that serves none of them.",
				Choice:     "Write the three down tonight, or with someone tomorrow, but before Monday.",
			},
			{
				Focus:      "Load renegotiation",
				Constraint: "Have one explicit conversation this week renegotiating a deadline or obligation.",
				Choice:     "Pick the counterpart who is most likely to say yes, start there.",
			},
		},
	},
}
