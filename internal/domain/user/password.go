package user

// MaxPasswordBytes is the longest input bcrypt hashes.
const MaxPasswordBytes = 72

func PasswordFits(password string) bool {
	return len(password) <= MaxPasswordBytes
}
