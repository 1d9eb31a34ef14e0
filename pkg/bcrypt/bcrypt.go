package bcrypt

import "golang.org/x/crypto/bcrypt"

// IBcrypt hashes and verifies user passwords.
type IBcrypt interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword string, password string) error
}

type bcryptService struct {
	cost int
}

func New() IBcrypt {
	return &bcryptService{cost: bcrypt.DefaultCost}
}

// NewWithCost lowers the work factor where hashing speed matters more
// than strength, such as seeding fixtures.
func NewWithCost(cost int) IBcrypt {
	return &bcryptService{cost: cost}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b *bcryptService) ComparePassword(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
