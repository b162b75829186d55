// Package tips holds a fixed pool of student-finance tips and picks a few at
// random for display. It keeps no state.
package tips

import "math/rand"

var pool = []string{
	"Note your expenses once a day to stay calmly aware.",
	"Keep small, predictable snacks at home to avoid impulse buys outside.",
	"Plan your week's meals so food spending feels intentional.",
	"Refill a water bottle instead of buying bottles on campus.",
	"Use a simple spending limit for outings and stick to it comfortably.",
	"Share subscriptions with trusted friends where allowed to reduce cost.",
	"Schedule a weekly money check-in that takes just 5-10 minutes.",
	"Walk or cycle for short distances when it feels safe and practical.",
	"Use a shopping list so you only buy what you had in mind.",
	"Borrow books from the library before buying new ones.",
	"Cook in bulk with friends and share ingredients to save gently.",
	"Keep a small emergency cushion, even if it grows slowly.",
	"Look for student discounts before paying full price.",
	"Compare prices online before buying electronics or textbooks.",
	"Set a simple monthly savings goal, even if the amount is small.",
	"Write down your top three spending priorities for this month.",
	"Buy second-hand when it feels comfortable for you.",
	"Pause for a few seconds before each unplanned purchase.",
	"Review your recurring subscriptions once a month.",
	"Try a no-spend day occasionally to reset your habits.",
	"Split big purchases into planned, smaller monthly amounts.",
	"Notice which days you tend to spend more, and plan ahead.",
	"Keep one payment method as your primary one to simplify tracking.",
	"When you get extra income, decide its purpose before spending.",
	"Keep a list of things you want and revisit it after a few days.",
	"Celebrate small wins like sticking to your plan for a week.",
	"Use reminders to pay any dues on time and avoid late fees.",
	"Bundle small online orders to reduce delivery fees.",
	"Use campus resources (labs, gyms, libraries) wherever possible.",
	"Review last month's spending for 5 minutes to spot easy tweaks.",
	"Choose one category to gently reduce this month, not all at once.",
	"Track cash withdrawals so you know where they are going.",
	"When you get a gift or bonus, consider saving a small part of it.",
	"Choose one day a week to quickly log all pending transactions.",
	"Keep big financial goals visible but flexible.",
	"Remember that small, steady changes often beat strict rules.",
	"Revisit your budget if your routine or semester changes.",
	"Group similar expenses together to see clear patterns.",
	"Plan ahead for festivals and celebrations in your budget.",
	"Aim for progress in your financial habits, not perfection.",
}

// Pick returns n distinct random tips. n is capped at the pool size; a
// non-positive n yields an empty slice.
func Pick(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]string, 0, n)
	for _, i := range rand.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}

// Count returns the pool size.
func Count() int {
	return len(pool)
}
