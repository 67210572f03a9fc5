package services

import (
	"fmt"
	"strings"
)

// The prompt structs below sit between data assembly and
// phrasing: each voice branch fills one struct, and exactly one render
// function turns it into text. Field order inside a rendering is fixed so
// output is deterministic and testable on its own.

type directionPrompt struct {
	StartName string
	EndName   string
	SameFloor bool
	Floor     int
	Heading   string
	EndFloor  int
	GoingUp   bool
	Distance  int
	Minutes   int
}

func renderDirection(p directionPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Navigation from %s to %s has started. ", p.StartName, p.EndName)
	if p.SameFloor {
		fmt.Fprintf(&b, "On floor %d, head %s for approx. %d meters. ", p.Floor, p.Heading, p.Distance)
	} else {
		dir := "down"
		if p.GoingUp {
			dir = "up"
		}
		fmt.Fprintf(&b, "Take the elevator or escalator %s to floor %d, then follow the signs to %s. Total distance approx. %d meters. ",
			dir, p.EndFloor, p.EndName, p.Distance)
	}
	fmt.Fprintf(&b, "You should arrive in about %d minutes.", p.Minutes)
	return b.String()
}

// headingWord derives a coarse heading purely from the signs of the
// coordinate deltas. It is not a compass bearing: a destination one meter
// east and a hundred meters south both read "southeast". That coarseness is
// inherited product behavior.
func headingWord(startX, startY, endX, endY float64) string {
	ns := "north"
	if endY > startY {
		ns = "south"
	}
	ew := "west"
	if endX > startX {
		ew = "east"
	}
	return ns + ew
}

type arrivalPrompt struct {
	StartName string
	EndName   string
	Distance  int
	Minutes   int
	Arrival   string
}

func renderArrival(p arrivalPrompt) string {
	return fmt.Sprintf("From %s to %s, the distance is approx. %d meters, about %d minutes on foot. Estimated arrival time is %s.",
		p.StartName, p.EndName, p.Distance, p.Minutes, p.Arrival)
}

type scheduleLine struct {
	Clock    string
	Event    string
	Location string
}

type schedulePrompt struct {
	Lines []scheduleLine
}

const emptyScheduleText = "You have no scheduled events in the next 24 hours."

func renderSchedule(p schedulePrompt) string {
	if len(p.Lines) == 0 {
		return emptyScheduleText
	}

	var b strings.Builder
	b.WriteString("Your schedule for the next 24 hours is as follows:")
	for i, line := range p.Lines {
		loc := line.Location
		if loc == "" {
			loc = "an unspecified location"
		}
		fmt.Fprintf(&b, "\n%d. %s, %s, at %s.", i+1, line.Clock, line.Event, loc)
	}
	return b.String()
}

type nearbyLine struct {
	Name      string
	Distance  int
	TypeLabel string
}

type nearbyPrompt struct {
	RefName string
	Floor   int
	Lines   []nearbyLine
}

func renderNearby(p nearbyPrompt) string {
	if len(p.Lines) == 0 {
		return fmt.Sprintf("No other facilities were found on floor %d.", p.Floor)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Facilities near %s include:", p.RefName)
	for i, line := range p.Lines {
		fmt.Fprintf(&b, "\n%d. %s, distance approx. %d meters, %s.", i+1, line.Name, line.Distance, line.TypeLabel)
	}
	return b.String()
}
