package images

type curatedImage struct {
	key string
	url string
}

// Ordered so substring matching stays deterministic.
var curatedImages = []curatedImage{
	// Vegetables
	{"tomato", "https://images.unsplash.com/photo-1546470427-e5ac89c8ba3a?w=400&h=300&fit=crop"},
	{"potato", "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400&h=300&fit=crop"},
	{"onion", "https://images.unsplash.com/photo-1508747703725-719777637510?w=400&h=300&fit=crop"},
	{"carrot", "https://images.unsplash.com/photo-1445282768818-728615cc910a?w=400&h=300&fit=crop"},
	{"broccoli", "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400&h=300&fit=crop"},
	{"spinach", "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400&h=300&fit=crop"},
	{"cauliflower", "https://images.unsplash.com/photo-1568584711271-946d4d46b7d8?w=400&h=300&fit=crop"},
	{"cabbage", "https://images.unsplash.com/photo-1594282486552-05b4d80fbb9f?w=400&h=300&fit=crop"},
	{"bell pepper", "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400&h=300&fit=crop"},
	{"cucumber", "https://images.unsplash.com/photo-1449300079323-02e209d9d3a6?w=400&h=300&fit=crop"},
	{"okra", "https://images.unsplash.com/photo-1583663848850-46af132dc08e?w=400&h=300&fit=crop"},
	{"eggplant", "https://images.unsplash.com/photo-1659261200833-ec8761558af7?w=400&h=300&fit=crop"},
	{"green beans", "https://images.unsplash.com/photo-1553395572-6ac2b2b4d0a1?w=400&h=300&fit=crop"},
	{"peas", "https://images.unsplash.com/photo-1587735243615-c03f25aaff15?w=400&h=300&fit=crop"},
	{"corn", "https://images.unsplash.com/photo-1551754655-cd27e38d2076?w=400&h=300&fit=crop"},

	// Fruits
	{"apple", "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=300&fit=crop"},
	{"banana", "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400&h=300&fit=crop"},
	{"orange", "https://images.unsplash.com/photo-1547514701-42782101795e?w=400&h=300&fit=crop"},
	{"mango", "https://images.unsplash.com/photo-1553279768-865429fa0078?w=400&h=300&fit=crop"},
	{"grapes", "https://images.unsplash.com/photo-1537640538966-79f369143f8f?w=400&h=300&fit=crop"},
	{"strawberry", "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=300&fit=crop"},

	// Proteins
	{"chicken", "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400&h=300&fit=crop"},
	{"mutton", "https://images.unsplash.com/photo-1588347818133-38c4106c8f4b?w=400&h=300&fit=crop"},
	{"fish", "https://images.unsplash.com/photo-1544943910-4c1dc44aab44?w=400&h=300&fit=crop"},
	{"eggs", "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400&h=300&fit=crop"},
	{"paneer", "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop"},

	// Grains & starches
	{"rice", "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400&h=300&fit=crop"},
	{"wheat", "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400&h=300&fit=crop"},
	{"bread", "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop"},
	{"pasta", "https://images.unsplash.com/photo-1551892374-ecf8754cf8b0?w=400&h=300&fit=crop"},

	// Lentils & legumes
	{"lentils", "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
	{"chickpeas", "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},
	{"kidney beans", "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=300&fit=crop"},

	// Dairy
	{"milk", "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=300&fit=crop"},
	{"yogurt", "https://images.unsplash.com/photo-1571212515416-fef01fc43637?w=400&h=300&fit=crop"},
	{"cheese", "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=400&h=300&fit=crop"},
	{"butter", "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?w=400&h=300&fit=crop"},

	// Spices & herbs
	{"ginger", "https://images.unsplash.com/photo-1599639832862-bd92c6e10b5b?w=400&h=300&fit=crop"},
	{"garlic", "https://images.unsplash.com/photo-1553978297-833d09932d31?w=400&h=300&fit=crop"},
	{"turmeric", "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=400&h=300&fit=crop"},
	{"coriander", "https://images.unsplash.com/photo-1618375569909-3c8616cf7733?w=400&h=300&fit=crop"},
}
