package storefront

import "github.com/misoniwath/Omega-coffee-order/internal/catalog"

type Key string

const (
	KeyTitle             Key = "title"
	KeyYourOrder         Key = "yourOrder"
	KeyEmptyCart         Key = "emptyCart"
	KeyTotalAmount       Key = "totalAmount"
	KeyName              Key = "name"
	KeyPhone             Key = "phone"
	KeyLocation          Key = "location"
	KeyPaymentMethod     Key = "paymentMethod"
	KeyABATransfer       Key = "abaTransfer"
	KeyIHavePaid         Key = "iHavePaid"
	KeyCashCOD           Key = "cashCod"
	KeyNote              Key = "note"
	KeySending           Key = "sending"
	KeyOrderSent         Key = "orderSent"
	KeyOrderConfirmation Key = "orderConfirmation"
	KeyOrderMore         Key = "orderMore"
	KeyOrderProblem      Key = "orderProblem"
)

var uiStrings = map[catalog.Language]map[Key]string{
	catalog.English: {
		KeyTitle:             "COFFEE MENU",
		KeyYourOrder:         "Your Order",
		KeyEmptyCart:         "Your cart is empty",
		KeyTotalAmount:       "Total Amount",
		KeyName:              "Name",
		KeyPhone:             "Phone",
		KeyLocation:          "Location",
		KeyPaymentMethod:     "Payment Method",
		KeyABATransfer:       "ABA Transfer",
		KeyIHavePaid:         "I Have Paid",
		KeyCashCOD:           "Cash / COD",
		KeyNote:              "Note (Optional)",
		KeySending:           "Sending Order...",
		KeyOrderSent:         "Order Sent!",
		KeyOrderConfirmation: "Your order has been sent to the cafe. We'll confirm shortly.",
		KeyOrderMore:         "Order More",
		KeyOrderProblem:      "There was a problem placing your order",
	},
	catalog.Khmer: {
		KeyTitle:             "ម៉ឺនុយកាហ្វេ",
		KeyYourOrder:         "ការបញ្ជាទិញរបស់អ្នក",
		KeyEmptyCart:         "កន្ត្រករបស់អ្នកទទេ",
		KeyTotalAmount:       "សរុបទឹកប្រាក់",
		KeyName:              "ឈ្មោះ",
		KeyPhone:             "លេខទូរស័ព្ទ",
		KeyLocation:          "ទីតាំង",
		KeyPaymentMethod:     "វិធីសាស្ត្រទូទាត់",
		KeyABATransfer:       "ផ្ទេរប្រាក់ ABA",
		KeyIHavePaid:         "ខ្ញុំបានបង់ប្រាក់រួចហើយ",
		KeyCashCOD:           "សាច់ប្រាក់ / ទូទាត់ពេលដឹកដល់",
		KeyNote:              "កំណត់សម្គាល់ (មិនចាំបាច់)",
		KeySending:           "កំពុងផ្ញើ...",
		KeyOrderSent:         "ការកម្មង់បានជោគជ័យ!",
		KeyOrderConfirmation: "ការកម្មង់របស់អ្នកត្រូវបានផ្ញើទៅកាន់ហាង។ យើងនឹងបញ្ជាក់ជូនក្នុងពេលឆាប់ៗនេះ។",
		KeyOrderMore:         "កម្មង់បន្ថែម",
		KeyOrderProblem:      "មានបញ្ហាក្នុងការដាក់ការបញ្ជាទិញ",
	},
	catalog.Chinese: {
		KeyTitle:             "咖啡菜单",
		KeyYourOrder:         "您的订单",
		KeyEmptyCart:         "您的购物车是空的",
		KeyTotalAmount:       "总金额",
		KeyName:              "姓名",
		KeyPhone:             "电话号码",
		KeyLocation:          "位置",
		KeyPaymentMethod:     "支付方式",
		KeyABATransfer:       "ABA 转账",
		KeyIHavePaid:         "我已付款",
		KeyCashCOD:           "现金 / 货到付款",
		KeyNote:              "备注 (可选)",
		KeySending:           "正在发送...",
		KeyOrderSent:         "订单已发送！",
		KeyOrderConfirmation: "您的订单已发送至咖啡厅。我们将尽快确认。",
		KeyOrderMore:         "再来一单",
		KeyOrderProblem:      "下单时出现问题",
	},
}

// T looks up a UI string, falling back to English and then to the key itself.
func T(lang catalog.Language, k Key) string {
	if s, ok := uiStrings[lang][k]; ok {
		return s
	}
	if s, ok := uiStrings[catalog.English][k]; ok {
		return s
	}
	return string(k)
}
