package synth

import "slices"

var ingredientPool = [...]string{
	"Bawang Merah", "Bawang Putih", "Garam", "Gula", "Merica", "Kecap Manis",
	"Minyak Goreng", "Air", "Telur", "Tepung Terigu", "Cabai", "Tomat",
	"Daun Bawang", "Santan", "Jahe", "Lengkuas", "Serai", "Daun Salam",
	"Ayam", "Daging Sapi", "Tahu", "Tempe", "Ikan",
}

var stepPool = [...]string{
	"Siapkan semua bahan dan cuci bersih.",
	"Panaskan minyak dalam wajan dengan api sedang.",
	"Tumis bumbu halus hingga harum dan matang.",
	"Masukkan bahan utama, aduk rata hingga berubah warna.",
	"Tambahkan air secukupnya dan masak hingga mendidih.",
	"Kecilkan api dan biarkan bumbu meresap sempurna.",
	"Koreksi rasa dengan garam dan gula sesuai selera.",
	"Angkat dan sajikan selagi hangat.",
	"Potong-potong bahan pelengkap sesuai selera.",
	"Marinasi bahan utama selama 15 menit agar bumbu meresap.",
}

var categoryLabels = [...]string{"Main Course", "Snack", "Dessert", "Breakfast", "Appetizer", "Beverage"}

var difficultyLabels = [...]string{"Easy", "Medium", "Hard"}

// Ingredients returns a copy of the ingredient pool
func Ingredients() []string { return slices.Clone(ingredientPool[:]) }

// Steps returns a copy of the preparation step pool
func Steps() []string { return slices.Clone(stepPool[:]) }

// Categories returns a copy of the category labels
func Categories() []string { return slices.Clone(categoryLabels[:]) }

// Difficulties returns a copy of the difficulty labels
func Difficulties() []string { return slices.Clone(difficultyLabels[:]) }
