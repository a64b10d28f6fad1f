package domain

import "math/rand"

// SpyRole is the role dealt to every spy.
const SpyRole = "Spy"

type RoleAssignment struct {
	Role  string
	IsSpy bool
}

// Assignment is the result of dealing a round: the drawn secret location and
// a role for every participant id.
type Assignment struct {
	Location string
	Roles    map[string]RoleAssignment
}

// Assign draws the round's location and deals roles. Pure apart from rng,
// which is injected so tests can fix the seed and assert exact outputs.
//
// The first min(settings.SpyCount, len(participants)) entries of a uniform
// permutation become spies; the rest receive the location's roles, cycling
// round-robin when the role list is shorter than the non-spy count. Every
// participant ends up with a non-empty role.
func Assign(participants []Participant, settings Settings, catalog Catalog, rng *rand.Rand) Assignment {
	cards := catalog.Resolve(settings.LocationPool)
	card := cards[rng.Intn(len(cards))]

	order := make([]string, len(participants))
	for i, p := range participants {
		order[i] = p.ID
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	spies := settings.SpyCount
	if spies > len(order) {
		spies = len(order)
	}

	roles := make(map[string]RoleAssignment, len(order))
	for i, id := range order {
		if i < spies {
			roles[id] = RoleAssignment{Role: SpyRole, IsSpy: true}
			continue
		}
		roles[id] = RoleAssignment{Role: card.Roles[i%len(card.Roles)]}
	}

	return Assignment{Location: card.Location, Roles: roles}
}
