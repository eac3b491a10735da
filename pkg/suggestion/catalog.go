package suggestion

import (
	"smart-pantry-backend/domain"
)

// CatalogEntry maps a canonical ingredient key to its ordered curated
// suggestions. Slice order is the substring-match tie-break, so the table
// must stay a slice, not a map.
type CatalogEntry struct {
	Key         string
	Suggestions []domain.Suggestion
}

var defaultCatalog = []CatalogEntry{
	{
		Key: "tomato",
		Suggestions: []domain.Suggestion{
			{Name: "Tomato Rasam", Style: "South Indian", Time: "25 mins", Difficulty: "Easy", Description: "Tangy South Indian soup with tomatoes, tamarind, and aromatic spices", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
			{Name: "Tamatar Bharta", Style: "North Indian", Time: "30 mins", Difficulty: "Medium", Description: "Smoky roasted tomato curry with onions and traditional spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Tomato Pulao", Style: "Indian", Time: "35 mins", Difficulty: "Medium", Description: "Fragrant rice dish cooked with fresh tomatoes and whole spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Tomato Pachadi", Style: "South Indian", Time: "20 mins", Difficulty: "Easy", Description: "Traditional South Indian tomato chutney with curry leaves and mustard seeds", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Tomato Shorba", Style: "Mughlai", Time: "40 mins", Difficulty: "Medium", Description: "Rich and creamy tomato soup with aromatic Mughlai spices", ImageURL: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "potato",
		Suggestions: []domain.Suggestion{
			{Name: "Aloo Jeera", Style: "North Indian", Time: "25 mins", Difficulty: "Easy", Description: "Simple yet flavorful potatoes cooked with cumin seeds and turmeric", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Dum Aloo Kashmiri", Style: "Kashmiri", Time: "45 mins", Difficulty: "Hard", Description: "Baby potatoes in rich yogurt-based gravy with Kashmiri spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Aloo Posto", Style: "Bengali", Time: "30 mins", Difficulty: "Medium", Description: "Bengali potato curry cooked with poppy seed paste", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Batata Vada", Style: "Maharashtrian", Time: "35 mins", Difficulty: "Medium", Description: "Crispy potato fritters served with spicy chutneys", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Aloo Bhujia", Style: "Rajasthani", Time: "20 mins", Difficulty: "Easy", Description: "Dry potato curry with onions and Rajasthani spices", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "onion",
		Suggestions: []domain.Suggestion{
			{Name: "Pyaz Kachori", Style: "Rajasthani", Time: "50 mins", Difficulty: "Hard", Description: "Crispy pastry filled with spiced onion mixture", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Vengaya Sambar", Style: "South Indian", Time: "40 mins", Difficulty: "Medium", Description: "Tangy lentil curry with small onions and tamarind", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Onion Bhaji", Style: "Maharashtrian", Time: "25 mins", Difficulty: "Easy", Description: "Crispy onion fritters perfect for monsoon evenings", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Pyaz Ka Halwa", Style: "Mughlai", Time: "60 mins", Difficulty: "Hard", Description: "Sweet onion dessert cooked in ghee and milk", ImageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop"},
			{Name: "Onion Thokku", Style: "South Indian", Time: "35 mins", Difficulty: "Medium", Description: "Spicy onion pickle-style curry from Tamil Nadu", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "carrot",
		Suggestions: []domain.Suggestion{
			{Name: "Gajar Ka Achaar", Style: "Punjabi", Time: "30 mins", Difficulty: "Easy", Description: "Tangy carrot pickle with mustard oil and spices", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Carrot Kosambari", Style: "South Indian", Time: "15 mins", Difficulty: "Easy", Description: "Fresh carrot salad with lentils and coconut", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop"},
			{Name: "Gajar Methi Sabzi", Style: "Gujarati", Time: "25 mins", Difficulty: "Easy", Description: "Carrots cooked with fresh fenugreek leaves", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Carrot Payasam", Style: "South Indian", Time: "45 mins", Difficulty: "Medium", Description: "Sweet carrot pudding with coconut milk and jaggery", ImageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop"},
			{Name: "Gajar Matar Ki Sabzi", Style: "North Indian", Time: "30 mins", Difficulty: "Easy", Description: "Carrots and green peas cooked in aromatic spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "broccoli",
		Suggestions: []domain.Suggestion{
			{Name: "Broccoli Thoran", Style: "Kerala", Time: "20 mins", Difficulty: "Easy", Description: "Kerala-style broccoli stir-fry with coconut and curry leaves", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Broccoli Masala", Style: "Indian Fusion", Time: "25 mins", Difficulty: "Medium", Description: "Broccoli cooked in rich tomato and onion gravy", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Broccoli Tikki", Style: "North Indian", Time: "35 mins", Difficulty: "Medium", Description: "Crispy broccoli patties served with mint chutney", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Broccoli Sambar", Style: "South Indian", Time: "40 mins", Difficulty: "Medium", Description: "Tangy lentil curry with broccoli and tamarind", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Broccoli Bhel", Style: "Street Food", Time: "15 mins", Difficulty: "Easy", Description: "Healthy twist on bhel puri with steamed broccoli", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "spinach",
		Suggestions: []domain.Suggestion{
			{Name: "Palak Kofta", Style: "North Indian", Time: "45 mins", Difficulty: "Hard", Description: "Spinach dumplings in rich tomato-based gravy", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Palak Pakoda", Style: "North Indian", Time: "25 mins", Difficulty: "Easy", Description: "Crispy spinach fritters perfect for tea time", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Keerai Masiyal", Style: "Tamil", Time: "20 mins", Difficulty: "Easy", Description: "Tamil-style mashed spinach with lentils and coconut", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Palak Khichdi", Style: "Gujarati", Time: "35 mins", Difficulty: "Easy", Description: "Nutritious rice and lentil dish with spinach", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Spinach Uttapam", Style: "South Indian", Time: "30 mins", Difficulty: "Medium", Description: "Fermented rice pancake topped with spinach and spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "chicken",
		Suggestions: []domain.Suggestion{
			{Name: "Chicken Chettinad", Style: "Tamil", Time: "50 mins", Difficulty: "Hard", Description: "Spicy Tamil chicken curry with roasted spices and coconut", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Murgh Musallam", Style: "Mughlai", Time: "90 mins", Difficulty: "Hard", Description: "Whole chicken cooked in rich Mughlai gravy with nuts", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
			{Name: "Chicken Koliwada", Style: "Maharashtrian", Time: "35 mins", Difficulty: "Medium", Description: "Crispy fried chicken pieces with coastal spices", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Kozhi Curry", Style: "Kerala", Time: "45 mins", Difficulty: "Medium", Description: "Kerala-style chicken curry with coconut milk and curry leaves", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Chicken Xacuti", Style: "Goan", Time: "60 mins", Difficulty: "Hard", Description: "Goan chicken curry with roasted coconut and poppy seeds", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "mutton",
		Suggestions: []domain.Suggestion{
			{Name: "Mutton Rara", Style: "Punjabi", Time: "75 mins", Difficulty: "Hard", Description: "Rich mutton curry with minced meat and whole spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Kosha Mangsho", Style: "Bengali", Time: "90 mins", Difficulty: "Hard", Description: "Bengali slow-cooked mutton with caramelized onions", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Mutton Sukka", Style: "South Indian", Time: "60 mins", Difficulty: "Medium", Description: "Dry mutton curry with coconut and South Indian spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Laal Maas", Style: "Rajasthani", Time: "80 mins", Difficulty: "Hard", Description: "Fiery red mutton curry with Mathania chilies", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Mutton Pepper Fry", Style: "Kerala", Time: "55 mins", Difficulty: "Medium", Description: "Kerala-style mutton with black pepper and curry leaves", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "rice",
		Suggestions: []domain.Suggestion{
			{Name: "Bisi Bele Bath", Style: "Karnataka", Time: "50 mins", Difficulty: "Medium", Description: "Karnataka-style rice dish with lentils and vegetables", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Coconut Rice", Style: "South Indian", Time: "25 mins", Difficulty: "Easy", Description: "Fragrant rice cooked with fresh coconut and curry leaves", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Tamarind Rice", Style: "South Indian", Time: "30 mins", Difficulty: "Easy", Description: "Tangy rice dish with tamarind and South Indian spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Ghee Rice", Style: "Kerala", Time: "35 mins", Difficulty: "Medium", Description: "Aromatic rice cooked in ghee with whole spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Pongal", Style: "Tamil", Time: "40 mins", Difficulty: "Easy", Description: "Comforting rice and lentil dish with black pepper and ghee", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "wheat",
		Suggestions: []domain.Suggestion{
			{Name: "Makki Ki Roti", Style: "Punjabi", Time: "40 mins", Difficulty: "Medium", Description: "Corn flour flatbread served with sarson ka saag", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Bhakri", Style: "Maharashtrian", Time: "30 mins", Difficulty: "Easy", Description: "Thick flatbread made from jowar or bajra flour", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Thepla", Style: "Gujarati", Time: "35 mins", Difficulty: "Medium", Description: "Spiced flatbread with fenugreek leaves and spices", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Rumali Roti", Style: "Mughlai", Time: "45 mins", Difficulty: "Hard", Description: "Paper-thin handkerchief bread cooked on inverted tawa", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Lachha Paratha", Style: "North Indian", Time: "50 mins", Difficulty: "Hard", Description: "Multi-layered flaky paratha with ghee", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "lentils",
		Suggestions: []domain.Suggestion{
			{Name: "Gujarati Dal", Style: "Gujarati", Time: "35 mins", Difficulty: "Easy", Description: "Sweet and tangy lentil curry with jaggery and tamarind", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Panchmel Dal", Style: "Rajasthani", Time: "45 mins", Difficulty: "Medium", Description: "Five-lentil curry with ghee and aromatic spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Moong Dal Halwa", Style: "North Indian", Time: "60 mins", Difficulty: "Hard", Description: "Rich dessert made from yellow lentils, ghee, and milk", ImageURL: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop"},
			{Name: "Paruppu Usili", Style: "Tamil", Time: "30 mins", Difficulty: "Medium", Description: "Steamed and crumbled lentils mixed with vegetables", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Khatta Moong", Style: "Rajasthani", Time: "25 mins", Difficulty: "Easy", Description: "Tangy moong dal curry with dried mango powder", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "paneer",
		Suggestions: []domain.Suggestion{
			{Name: "Paneer Lababdar", Style: "Punjabi", Time: "40 mins", Difficulty: "Medium", Description: "Rich paneer curry with tomatoes, cashews, and cream", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
			{Name: "Paneer Bhurji", Style: "North Indian", Time: "20 mins", Difficulty: "Easy", Description: "Scrambled paneer with onions, tomatoes, and spices", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Paneer Kofta", Style: "Mughlai", Time: "50 mins", Difficulty: "Hard", Description: "Paneer dumplings in rich tomato and cashew gravy", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Paneer Tikka", Style: "Punjabi", Time: "35 mins", Difficulty: "Medium", Description: "Grilled paneer cubes marinated in yogurt and spices", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Paneer Paratha", Style: "North Indian", Time: "45 mins", Difficulty: "Medium", Description: "Stuffed flatbread with spiced paneer filling", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "cauliflower",
		Suggestions: []domain.Suggestion{
			{Name: "Gobi Manchurian", Style: "Indo-Chinese", Time: "35 mins", Difficulty: "Medium", Description: "Crispy cauliflower in tangy Indo-Chinese sauce", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Gobi Paratha", Style: "Punjabi", Time: "40 mins", Difficulty: "Medium", Description: "Stuffed flatbread with spiced cauliflower filling", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Cauliflower Pickle", Style: "North Indian", Time: "25 mins", Difficulty: "Easy", Description: "Tangy cauliflower pickle with mustard oil and spices", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Gobi 65", Style: "South Indian", Time: "30 mins", Difficulty: "Medium", Description: "Spicy fried cauliflower appetizer with curry leaves", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Gobi Masala", Style: "North Indian", Time: "35 mins", Difficulty: "Medium", Description: "Cauliflower curry in rich tomato and onion gravy", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "okra",
		Suggestions: []domain.Suggestion{
			{Name: "Bhindi Masala", Style: "North Indian", Time: "30 mins", Difficulty: "Medium", Description: "Spiced okra curry with onions and tomatoes", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Bhindi Fry", Style: "South Indian", Time: "25 mins", Difficulty: "Easy", Description: "Crispy fried okra with South Indian spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Stuffed Bhindi", Style: "Rajasthani", Time: "40 mins", Difficulty: "Hard", Description: "Okra stuffed with spice mixture and slow cooked", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Bhindi Sambar", Style: "South Indian", Time: "35 mins", Difficulty: "Medium", Description: "Tangy lentil curry with okra and tamarind", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
			{Name: "Bhindi Raita", Style: "North Indian", Time: "15 mins", Difficulty: "Easy", Description: "Cooling yogurt-based side dish with fried okra", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "eggplant",
		Suggestions: []domain.Suggestion{
			{Name: "Baingan Bharta", Style: "Punjabi", Time: "45 mins", Difficulty: "Medium", Description: "Smoky roasted eggplant mash with spices", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Stuffed Baingan", Style: "Maharashtrian", Time: "50 mins", Difficulty: "Hard", Description: "Baby eggplants stuffed with spice paste", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Baingan Curry", Style: "South Indian", Time: "35 mins", Difficulty: "Medium", Description: "Eggplant curry in coconut and tamarind gravy", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Baingan Pakoda", Style: "North Indian", Time: "25 mins", Difficulty: "Easy", Description: "Crispy eggplant fritters with gram flour batter", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400&h=300&fit=crop"},
			{Name: "Vangi Bath", Style: "Karnataka", Time: "40 mins", Difficulty: "Medium", Description: "Spiced rice dish with eggplant and special masala", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
		},
	},
	{
		Key: "green beans",
		Suggestions: []domain.Suggestion{
			{Name: "Green Bean Poriyal", Style: "South Indian", Time: "20 mins", Difficulty: "Easy", Description: "South Indian stir-fry with coconut and curry leaves", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Bean Sabzi", Style: "North Indian", Time: "25 mins", Difficulty: "Easy", Description: "Simple green bean curry with basic spices", ImageURL: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
			{Name: "Bean Aloo", Style: "Punjabi", Time: "30 mins", Difficulty: "Medium", Description: "Green beans and potatoes cooked together", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop"},
			{Name: "Bean Pickle", Style: "Indian", Time: "35 mins", Difficulty: "Medium", Description: "Tangy green bean pickle with oil and spices", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop"},
			{Name: "Bean Sambar", Style: "Tamil", Time: "40 mins", Difficulty: "Medium", Description: "Lentil curry with green beans and tamarind", ImageURL: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},
		},
	},
}
