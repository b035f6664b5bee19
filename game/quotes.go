package game

import "time"

// Quote is one motivational line shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var dailyQuotes = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"We are what we repeatedly do. Excellence is not an act, but a habit.", "Aristotle"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"The future depends on what you do today.", "Mahatma Gandhi"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"Start where you are. Use what you have. Do what you can.", "Arthur Ashe"},
	{"Small daily improvements over time lead to stunning results.", "Robin Sharma"},
	{"Motivation is what gets you started. Habit is what keeps you going.", "Jim Ryun"},
	{"Your habits will determine your future.", "Jack Canfield"},
	{"Champions keep playing until they get it right.", "Billie Jean King"},
	{"The harder you work, the luckier you get.", "Gary Player"},
	{"Success is walking from failure to failure with no loss of enthusiasm.", "Winston Churchill"},
	{"Be stronger than your strongest excuse.", "Unknown"},
	{"Every expert was once a beginner.", "Helen Hayes"},
	{"Progress, not perfection.", "Unknown"},
	{"The best time to plant a tree was 20 years ago. The second best time is now.", "Chinese Proverb"},
	{"Your only limit is you.", "Unknown"},
	{"Dream big. Start small. Act now.", "Robin Sharma"},
	{"One day or day one. You decide.", "Unknown"},
	{"Make each day your masterpiece.", "John Wooden"},
	{"Discipline is the bridge between goals and accomplishment.", "Jim Rohn"},
	{"The pain of discipline is nothing like the pain of disappointment.", "Justin Langer"},
	{"You don't have to be great to start, but you have to start to be great.", "Zig Ziglar"},
	{"Today's actions are tomorrow's results.", "Unknown"},
	{"Consistency is key. Keep showing up.", "Unknown"},
	{"Little by little, a little becomes a lot.", "Tanzanian Proverb"},
	{"The only bad workout is the one that didn't happen.", "Unknown"},
}

// QuoteForDay picks the quote for a calendar day, rotating by day of year.
// Day of year is 1-based, so Jan 1 lands on index 1, not 0.
func QuoteForDay(t time.Time) Quote {
	return dailyQuotes[t.YearDay()%len(dailyQuotes)]
}
