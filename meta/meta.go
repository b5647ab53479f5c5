// meta/meta.go
package meta

// MaxTurns bounds a game. Every move fills a square, so no game reaches it.
const MaxTurns = 100

// NumGames defines the number of games per experiment matchup.
const NumGames = 10

// Workers defines the number of games played concurrently in an experiment.
const Workers = 4
