package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in coffee menu served when no catalog database is configured.
func Default() *Catalog {
	cats := []Category{
		{ID: "hot-coffee", Name: LocalizedString{EN: "Hot Coffee", KM: "កាហ្វេក្តៅ", CH: "热咖啡"}},
		{ID: "soda", Name: LocalizedString{EN: "Soda Drinks", KM: "ភេសជ្ជៈសូដា", CH: "苏打水"}},
		{ID: "tea", Name: LocalizedString{EN: "Tea Drinks", KM: "ភេសជ្ជៈតែ", CH: "茶饮料"}},
		{ID: "ice-coffee", Name: LocalizedString{EN: "Ice Coffee", KM: "កាហ្វេទឹកកក", CH: "冰咖啡"}},
		{ID: "ice-drinks", Name: LocalizedString{EN: "Ice Drinks", KM: "ភេសជ្ជៈទឹកកក", CH: "冰饮"}},
		{ID: "frappe", Name: LocalizedString{EN: "Frappe Drinks", KM: "ភេសជ្ជៈក្រឡុក", CH: "冰沙"}},
	}

	products := make([]Product, 0, len(menu))
	for _, m := range menu {
		products = append(products, Product{
			ID:       m.id,
			Name:     LocalizedString{EN: m.en, KM: m.km, CH: m.ch},
			Price:    decimal.RequireFromString(m.price),
			Category: m.category,
			Image:    m.image,
		})
	}

	c, err := New(cats, products)
	if err != nil {
		panic("catalog: built-in menu is invalid: " + err.Error())
	}
	return c
}

type menuRow struct {
	id, category, en, km, ch, price, image string
}

var menu = []menuRow{
	{"hc1", "hot-coffee", "Espresso", "អេសប្រេសសូ", "浓缩咖啡", "1.00", "/hot-espresso.jpg"},
	{"hc2", "hot-coffee", "Hot Americano", "កាហ្វេខ្មៅ", "热美式咖啡", "1.25", "/hot-americano.jpg"},
	{"hc3", "hot-coffee", "Hot Latte", "ឡាតេក្ដៅ", "热拿铁", "1.25", "/hot-latte.jpg"},
	{"hc4", "hot-coffee", "Hot Cappuccino", "កាពូជីណូក្ដៅ", "热卡布奇诺", "1.50", "/hot-cappuccino.jpg"},
	{"hc5", "hot-coffee", "Hot Mocha", "ម ូកាក្ដៅ", "咖啡摩卡", "1.50", "/hot-mocha.jpg"},
	{"hc6", "hot-coffee", "Hot Fresh Milk", "ទឹកដោះគោក្ដៅ", "热鲜奶", "1.25", "/hot-fresh-milk.jpg"},
	{"hc7", "hot-coffee", "Hot Chocolate", "សូកូឡាក្ដៅ", "热可可", "1.50", "/hot-chocolate.jpg"},
	{"hc8", "hot-coffee", "Hot Green Tea", "តែបៃតងក្ដៅ", "热绿茶", "1.50", "/hot-green-tea.jpg"},
	{"hc9", "hot-coffee", "Hot Red Tea", "តែក្រហមក្ដៅ", "热红茶", "1.50", "/hot-thai-tea.jpg"},
	{"sd1", "soda", "Blue Sky Soda", "សូដាខៀវ", "蓝天苏打", "1.25", "/blue-sky-soda.jpg"},
	{"sd2", "soda", "Strawberry Soda", "ស្ត្របឺរីសូដា", "草莓苏打", "1.25", "/strawberry-soda.jpg"},
	{"sd3", "soda", "Blueberry Soda", "ប៊្លូបឺរីសូដា", "蓝莓苏打", "1.25", "/blueberry-soda.jpg"},
	{"sd4", "soda", "Green Apple Soda", "សូដាប៉ោមខៀវ", "青苹果苏打", "1.25", "/green-apple-soda.jpg"},
	{"sd5", "soda", "Kiwi Soda", "គីវីសូដា", "猕猴桃苏打", "1.25", "/kiwi-soda.jpg"},
	{"sd6", "soda", "Passion Soda", "ផាសិនសូដា", "百香果苏打", "1.25", "/passion-soda.jpg"},
	{"td1", "tea", "Ice Lemon Red Tea", "តែក្រហមក្រូចឆ្មៅ", "冰柠檬红茶", "1.25", "/ice-lemon-red-tea.jpg"},
	{"td2", "tea", "Ice Lemon Green Tea", "តែបៃតងក្រូចឆ្មៅ", "冰柠檬绿茶", "1.25", "/ice-lemon-green-tea.jpg"},
	{"ic1", "ice-coffee", "Ice Americano", "កាហ្វេទឹកកក", "冰咖啡", "1.50", "/ice-coffee.jpg"},
	{"ic2", "ice-coffee", "Ice Milk Coffee", "កាហ្វេទឹកដោះគោទឹកកក", "冰咖啡加牛奶", "1.50", "/ice-milk-coffee.jpg"},
	{"ic3", "ice-coffee", "Ice Latte", "ឡាអេទឹកកក", "冰咖啡拿铁", "1.50", "/ice-latte.jpg"},
	{"ic4", "ice-coffee", "Ice Cappuccino", "កាពូឈីណូ", "冰咖啡卡布奇诺", "1.50", "/ice-cappuccino.jpg"},
	{"ic5", "ice-coffee", "Ice Mocha", "ម ូកា", "冰咖啡摩卡", "1.50", "/ice-mocha.jpg"},
	{"id1", "ice-drinks", "Milk Green Tea", "តែបៃតងទឹកដោះគោ", "冰绿茶", "1.50", "/milk-green-tea.jpg"},
	{"id2", "ice-drinks", "Milk Red Tea", "តែក្រហមទឹកដោះគោ", "冰红茶", "1.50", "/milk-thai-tea.jpg"},
	{"id3", "ice-drinks", "Ice Chocolate", "សូកូឡា", "冰巧克力", "1.50", "/ice-chocolate.jpg"},
	{"id4", "ice-drinks", "Passion Milk", "ផាសិនទឹកដោះគោ", "百香果牛奶", "1.50", "/passion-milk.jpg"},
	{"id5", "ice-drinks", "Ice Matcha Latte", "ម៉ាត់ឆាទឹកដោះគោទឹកកក", "冰抹茶拿铁", "2.00", "/milk-green-tea.jpg"},
	{"fd1", "frappe", "Mocha Frappe", "ម ូកាក្រឡុក", "咖啡摩卡冰沙", "2.00", "/mocha-frappe.jpg"},
	{"fd2", "frappe", "Milk Coffee Frappe", "កាហ្វេទឹកដោះគោក្រឡុក", "冰咖啡加牛奶冰沙", "2.00", "/delicious-coffee-cup-indoors (1).jpg"},
	{"fd3", "frappe", "Chocolate Frappe", "សូកូឡាក្រឡុក", "巧克力冰沙", "2.00", "/chocolate-smoothie.jpg"},
	{"fd4", "frappe", "Cappuccino Frappe", "កាពូជីណូក្រឡុក", "咖啡卡布奇诺冰沙", "2.00", "/capu-frappe.jpg"},
	{"fd5", "frappe", "Passion Frappe", "ផាសិនក្រឡុក", "百香果冰沙", "2.00", "/Mango passion fruit smoothie.jpg"},
	{"fd6", "frappe", "Blueberry Frappe", "ប៊្លូបឺរីក្រឡុក", "蓝莓冰沙", "2.00", "/Pineapple Blueberry Frappuccino – recipestasteful.jpg"},
	{"fd7", "frappe", "Strawberry Frappe", "ស្ត្របឺរីក្រឡុក", "草莓冰沙", "2.00", "/stawberry-frape.jpg"},
	{"fd8", "frappe", "Avocado Frappe", "ប៊័រក្រឡុក", "鳄梨冰沙", "2.00", "/avocado-frape.jpg"},
	{"fd9", "frappe", "Green Tea Frappe", "តែបៃតងក្រឡុក", "绿茶冰沙", "2.00", "/green-tes-frape.jpg"},
	{"fd10", "frappe", "Red Tea Frappe", "តែក្រហមក្រឡុក", "红茶冰沙", "2.00", "/red-tea-frape.jpg"},
}
