package common

// User holds a balance and the history of orders it has executed. The
// balance gates purchases but is never debited here, settlement is out of
// scope.
type User struct {
	Username string
	Balance  float64
	History  []Order
}

func NewUser(username string, balance float64) *User {
	return &User{
		Username: username,
		Balance:  balance,
	}
}

// Valid reports whether the user is well-formed enough to trade.
func (u *User) Valid() bool {
	return u != nil && u.Username != ""
}
