// Package collab tracks how often artists work together and answers two
// derived questions about the resulting collaboration graph.
//
// # Overview
//
// Every published show contributes one collaboration to each unordered pair of
// its participants (the cast plus the director or creator). The Graph keeps
// one weight per pair and, for each artist, the highest weight of any of its
// edges together with the co-artists that reach it ("local friends").
//
// Two artists "avoid" each other when both are known and their pair weight is
// still zero. Avoidance is never stored separately: it is the complement of
// the weighted adjacency, so it is symmetric by construction and only shrinks
// as shows are recorded. Registering a new artist makes it an avoider of every
// existing artist.
//
// # Queries
//
// Friends: Engine.AllFriends returns the artists whose local maximum equals
// the global maximum, and Engine.FriendsOf lists the local friends of one
// artist whose names sort after it, so each pair is reported once.
//
// Avoiders: Engine.Avoiders returns every largest group of artists that have
// pairwise never collaborated (a maximum clique of the complement graph).
// Groups of one artist are never reported. The search is exponential in the
// worst case and is meant for populations of tens to low hundreds of artists.
//
// # Usage Example
//
//	engine := collab.NewEngine()
//	engine.PublishShow("Heat", "Mann", []string{"Pacino", "De Niro"})
//	friends, err := engine.AllFriends()
//	groups, err := engine.Avoiders()
//
// The Engine is the single owner of all collaboration state. It is not safe
// for concurrent use; callers process one command at a time.
package collab
