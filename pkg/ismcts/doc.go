// Package ismcts implements Information Set Monte Carlo Tree Search: a
// decision-making algorithm for sequential games with imperfect
// information. Given a game position from the perspective of a
// decision-making player, Handler builds a search tree through many
// randomized playouts and recommends a next move.
//
// Callers supply a concrete game by implementing Game; the package never
// looks inside a game state beyond that contract. The module ships no
// example game; the package's own tests drive the engine with a small
// synthetic game.
package ismcts
