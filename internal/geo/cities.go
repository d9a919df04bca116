package geo

// Cities is the fixed set of known place names, the 81 provinces.
var Cities = []string{
	"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Aksaray", "Amasya",
	"Ankara", "Antalya", "Ardahan", "Artvin", "Aydın", "Balıkesir",
	"Bartın", "Batman", "Bayburt", "Bilecik", "Bingöl", "Bitlis", "Bolu",
	"Burdur", "Bursa", "Çanakkale", "Çankırı", "Çorum", "Denizli",
	"Diyarbakır", "Düzce", "Edirne", "Elazığ", "Erzincan", "Erzurum",
	"Eskişehir", "Gaziantep", "Giresun", "Gümüşhane", "Hakkari", "Hatay",
	"Iğdır", "Isparta", "İstanbul", "İzmir", "Kahramanmaraş", "Karabük",
	"Karaman", "Kars", "Kastamonu", "Kayseri", "Kilis", "Kırıkkale",
	"Kırklareli", "Kırşehir", "Kocaeli", "Konya", "Kütahya", "Malatya",
	"Manisa", "Mardin", "Mersin", "Muğla", "Muş", "Nevşehir", "Niğde",
	"Ordu", "Osmaniye", "Rize", "Sakarya", "Samsun", "Şanlıurfa", "Siirt",
	"Sinop", "Şırnak", "Sivas", "Tekirdağ", "Tokat", "Trabzon", "Tunceli",
	"Uşak", "Van", "Yalova", "Yozgat", "Zonguldak",
}
