package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

func withID(id string) entity.Base { return entity.Base{ID: id} }

// SeedData is the storefront's starter catalog. Records carry fixed ids so
// cross references survive re-seeding on a fresh database.
func SeedData() repository.SeedData {
	return repository.SeedData{
		Categories: []entity.Category{
			{Base: withID("1"), Name: "Pizza", Image: "/img/categories/pizza.png"},
			{Base: withID("2"), Name: "Hambúrguer", Image: "/img/categories/burger.png"},
			{Base: withID("3"), Name: "Japonesa", Image: "/img/categories/sushi.png"},
			{Base: withID("4"), Name: "Sobremesas", Image: "/img/categories/dessert.png"},
		},
		Restaurants: []entity.Restaurant{
			{
				Base: withID("1"), Name: "Pizzaria Bella Napoli",
				Description: "Pizzas artesanais no forno a lenha",
				Image:       "/img/restaurants/bella-napoli.jpg",
				CategoryID:  "1", DeliveryFee: 799, Rating: 4.7,
				DeliveryTime: "40-55 min", IsOpen: true,
			},
			{
				Base: withID("2"), Name: "Burger do Zé",
				Description: "Smash burgers e batata rústica",
				Image:       "/img/restaurants/burger-do-ze.jpg",
				CategoryID:  "2", DeliveryFee: 0, Rating: 4.5,
				DeliveryTime: "25-40 min", IsOpen: true,
			},
			{
				Base: withID("3"), Name: "Sushi Kenzo",
				Description: "Combinados e temakis",
				Image:       "/img/restaurants/sushi-kenzo.jpg",
				CategoryID:  "3", DeliveryFee: 999, Rating: 4.8,
				DeliveryTime: "50-65 min", IsOpen: true,
			},
		},
		MenuItems: []entity.MenuItem{
			{
				Base: withID("1"), RestaurantID: "1", Name: "Pizza Margherita",
				Description: "Molho de tomate, muçarela e manjericão",
				Price:       4590, Image: "/img/menu/margherita.jpg", Rating: 4.8,
				Available: true,
				Options: []entity.MenuItemOption{
					{Name: "Tamanho", Choices: []entity.OptionChoice{
						{Value: "Média"},
						{Value: "Grande", PriceDelta: 1000},
					}},
					{Name: "Borda", Choices: []entity.OptionChoice{
						{Value: "Tradicional"},
						{Value: "Catupiry", PriceDelta: 800},
					}},
				},
			},
			{
				Base: withID("2"), RestaurantID: "1", Name: "Pizza Calabresa",
				Description: "Calabresa fatiada com cebola",
				Price:       4290, Image: "/img/menu/calabresa.jpg", Rating: 4.6,
				Available: true,
			},
			{
				Base: withID("3"), RestaurantID: "2", Name: "Smash Clássico",
				Description: "Dois smash, queijo e molho da casa",
				Price:       2890, Image: "/img/menu/smash.jpg", Rating: 4.5,
				Available: true,
				Options: []entity.MenuItemOption{
					{Name: "Adicionais", Multiple: true, Choices: []entity.OptionChoice{
						{Value: "Bacon", PriceDelta: 400},
						{Value: "Cheddar extra", PriceDelta: 300},
					}},
				},
			},
			{
				Base: withID("4"), RestaurantID: "3", Name: "Combinado 20 peças",
				Description: "Seleção do chef",
				Price:       6990, Image: "/img/menu/combinado.jpg", Rating: 4.9,
				Available: true,
			},
		},
	}
}

// SeedAdmin creates the admin account once, from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(colls *repository.Collections) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	users, err := colls.Users.GetAll()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			log.Println("admin already exists:", email)
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = colls.Users.Create(entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "Seed",
		Role:         "admin",
		CreatedAt:    time.Now(),
	})
	return err
}
