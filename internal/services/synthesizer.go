package services

import (
	"fmt"
	"strings"

	"planora/internal/models/response_models"
)

type daySegment struct {
	Label string
	Time  string
}

var daySegments = [3]daySegment{
	{Label: "Morning", Time: "8:30 AM"},
	{Label: "Afternoon", Time: "1:30 PM"},
	{Label: "Evening", Time: "7:00 PM"},
}

// CuratedActivity is a hand-written activity template; %s in Description is
// replaced with the destination.
type CuratedActivity struct {
	Title       string
	Time        string
	Description string
}

// CuratedInterest pairs matching keywords with one curated activity per day
// segment and a summary template (%s = destination).
type CuratedInterest struct {
	Keywords   []string
	Activities [3]CuratedActivity
	Summary    string
}

// InterestRegistry maps interest keywords to curated content. Matching is
// case-insensitive substring against each keyword; the first registered entry
// that matches wins, so register specific entries before broad ones.
type InterestRegistry struct {
	entries []CuratedInterest
}

func NewInterestRegistry() *InterestRegistry {
	r := &InterestRegistry{}

	r.Register(CuratedInterest{
		Keywords: []string{"food", "culinary", "dining", "street food"},
		Activities: [3]CuratedActivity{
			{
				Title:       "Market breakfast crawl",
				Time:        "9:00 AM",
				Description: "Start at the busiest morning market in %s and graze your way through the stalls locals queue for.",
			},
			{
				Title:       "Neighborhood food walk",
				Time:        "1:30 PM",
				Description: "Follow a self-guided tasting route through %s, pairing small plates with stops at bakeries and specialty shops.",
			},
			{
				Title:       "Signature dinner",
				Time:        "7:30 PM",
				Description: "Book a table for the dish %s is known for, then finish with dessert from a late-night counter nearby.",
			},
		},
		Summary: "A day built around eating your way through %s, from market stalls at sunrise to a slow signature dinner.",
	})

	r.Register(CuratedInterest{
		Keywords: []string{"culture", "history", "museum", "art"},
		Activities: [3]CuratedActivity{
			{
				Title:       "Landmark deep-dive",
				Time:        "9:00 AM",
				Description: "Beat the crowds at the most storied landmark in %s and take the long way out through its quieter wings.",
			},
			{
				Title:       "Museum and gallery loop",
				Time:        "2:00 PM",
				Description: "Pick two collections in %s that you can cover without rushing, with a cafe break in between.",
			},
			{
				Title:       "Old-quarter evening stroll",
				Time:        "7:00 PM",
				Description: "Wander the historic streets of %s as the lights come on, when the architecture does most of the talking.",
			},
		},
		Summary: "A day steeped in the history and arts of %s, paced so the landmarks sink in rather than blur together.",
	})

	r.Register(CuratedInterest{
		Keywords: []string{"nature", "outdoor", "hiking", "beach"},
		Activities: [3]CuratedActivity{
			{
				Title:       "Sunrise trail or shoreline",
				Time:        "7:30 AM",
				Description: "Get out early to the best green space or waterfront %s has before the heat and the crowds arrive.",
			},
			{
				Title:       "Open-air afternoon",
				Time:        "1:30 PM",
				Description: "Rent a bike or keep walking: string together the parks and viewpoints around %s at your own pace.",
			},
			{
				Title:       "Golden-hour viewpoint",
				Time:        "6:30 PM",
				Description: "Find the overlook locals recommend in %s and stay through sunset with snacks in your bag.",
			},
		},
		Summary: "A day outdoors around %s, front-loading the active stretches and ending at a sunset viewpoint.",
	})

	r.Register(CuratedInterest{
		Keywords: []string{"nightlife", "music", "bar"},
		Activities: [3]CuratedActivity{
			{
				Title:       "Slow late start",
				Time:        "10:30 AM",
				Description: "Sleep in, then ease into the day with brunch in the liveliest district of %s.",
			},
			{
				Title:       "Record shops and rooftops",
				Time:        "3:00 PM",
				Description: "Scout the venues and rooftop spots in %s now so you know exactly where tonight starts.",
			},
			{
				Title:       "Night out",
				Time:        "9:00 PM",
				Description: "Catch live music or hop the bars of %s, saving the biggest venue for last.",
			},
		},
		Summary: "A day tuned for the nights out in %s: slow mornings, scouting afternoons, late evenings.",
	})

	return r
}

func (r *InterestRegistry) Register(entry CuratedInterest) {
	r.entries = append(r.entries, entry)
}

// Match returns the first registered entry with a keyword contained in the
// interest, case-insensitively.
func (r *InterestRegistry) Match(interest string) (CuratedInterest, bool) {
	lower := strings.ToLower(interest)
	for _, entry := range r.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry, true
			}
		}
	}
	return CuratedInterest{}, false
}

// FallbackPlanner deterministically synthesizes a complete itinerary from
// Prefs. It is a total function: any valid Prefs yields a full itinerary with
// one day plan per travel day and three activities per day.
type FallbackPlanner struct {
	registry *InterestRegistry
}

func NewFallbackPlanner(registry *InterestRegistry) *FallbackPlanner {
	return &FallbackPlanner{registry: registry}
}

func (f *FallbackPlanner) Build(p Prefs, days []response_models.TravelDay) response_models.Itinerary {
	plans := make([]response_models.DayPlan, 0, len(days))
	for i, day := range days {
		plans = append(plans, response_models.DayPlan{
			Title:      fmt.Sprintf("Day %d", day.Day),
			Date:       day.Label,
			Summary:    f.daySummary(p, i),
			Activities: f.dayActivities(p, i),
		})
	}

	n := len(plans)
	duration := fmt.Sprintf("%d days", n)
	if n == 1 {
		duration = "1 day"
	}

	return response_models.Itinerary{
		Destination: p.Destination,
		Duration:    duration,
		Budget:      p.Budget,
		Interests:   p.Interests,
		Overview:    f.overview(p, n),
		Tips: []string{
			"Block off a little buffer time each day for spontaneous discoveries.",
			"Check opening hours a day ahead—local schedules can shift seasonally.",
			"Bookmark directions offline in case your connection drops while exploring.",
		},
		Days: plans,
	}
}

// dayActivities emits the three segment activities for day index i.
// Interests rotate across both days and segments via (i + segment) mod len,
// so a multi-day trip never repeats the same lineup two days running.
func (f *FallbackPlanner) dayActivities(p Prefs, i int) []response_models.Activity {
	activities := make([]response_models.Activity, 0, len(daySegments))

	for j, segment := range daySegments {
		if len(p.Interests) == 0 {
			activities = append(activities, response_models.Activity{
				Title: fmt.Sprintf("%s adventure", segment.Label),
				Time:  segment.Time,
				Description: fmt.Sprintf(
					"Spend your %s discovering a new corner of %s. Mix in cafes, museums, or parks based on the vibe you're feeling.",
					strings.ToLower(segment.Label), p.Destination),
			})
			continue
		}

		interest := p.Interests[(i+j)%len(p.Interests)]
		if curated, ok := f.registry.Match(interest); ok {
			activity := curated.Activities[j]
			activities = append(activities, response_models.Activity{
				Title:       activity.Title,
				Time:        activity.Time,
				Description: fmt.Sprintf(activity.Description, p.Destination),
			})
			continue
		}

		activities = append(activities, response_models.Activity{
			Title: fmt.Sprintf("%s – %s", segment.Label, interest),
			Time:  segment.Time,
			Description: fmt.Sprintf(
				"Immerse yourself in %s experiences around %s. Reserve a little time to wander and see what surprises you find.",
				strings.ToLower(interest), p.Destination),
		})
	}

	return activities
}

// daySummary describes day i around its primary interest: the one assigned to
// the first segment by the same rotation the activities use.
func (f *FallbackPlanner) daySummary(p Prefs, i int) string {
	if len(p.Interests) == 0 {
		return fmt.Sprintf(
			"Spend the day exploring local highlights in %s. Balance anchor activities with time to relax and soak in the atmosphere.",
			p.Destination)
	}

	primary := p.Interests[i%len(p.Interests)]
	if curated, ok := f.registry.Match(primary); ok {
		return fmt.Sprintf(curated.Summary, p.Destination)
	}

	return fmt.Sprintf(
		"Spend the day exploring %s in %s. Balance anchor activities with time to relax and soak in the atmosphere.",
		strings.ToLower(primary), p.Destination)
}

func (f *FallbackPlanner) overview(p Prefs, dayCount int) string {
	interestSummary := "a mix of culture, dining, and relaxation"
	if len(p.Interests) > 0 {
		limit := len(p.Interests)
		if limit > 3 {
			limit = 3
		}
		interestSummary = strings.Join(p.Interests[:limit], ", ")
	}

	return fmt.Sprintf(
		"A %d-day escape to %s tailored to a %s budget. Expect a balance of must-see highlights with time to follow your curiosity around %s.",
		dayCount, p.Destination, p.Budget, interestSummary)
}
