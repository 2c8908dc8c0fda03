package app

// MinPlayersToStartAuction defines the minimum number of occupied seats
// required to start an auction. One is enough: a lone human practices against
// bots filling the remaining seats.
const MinPlayersToStartAuction = 1
