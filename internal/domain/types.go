package domain

// OrderScene определяет сценарий заказа: он задает источник цены при создании
// и целевой статус после оплаты.
type OrderScene string

const (
	SceneTable     OrderScene = "TABLE"
	ScenePickup    OrderScene = "PICKUP"
	SceneDelivery  OrderScene = "DELIVERY"
	SceneCoupon    OrderScene = "COUPON"
	SceneBill      OrderScene = "BILL"
	SceneDirectPay OrderScene = "DIRECTPAY"
)

type OrderStatusType string

const (
	OrderStatusCreated   OrderStatusType = "CREATED"
	OrderStatusPaid      OrderStatusType = "PAID"
	OrderStatusWaitUse   OrderStatusType = "WAIT_USE"
	OrderStatusMaking    OrderStatusType = "MAKING"
	OrderStatusDone      OrderStatusType = "DONE"
	OrderStatusReviewed  OrderStatusType = "REVIEWED"
	OrderStatusCancelled OrderStatusType = "CANCELLED"
	OrderStatusRefunded  OrderStatusType = "REFUNDED"
)

type PaymentChannel string

const (
	ChannelWxJSAPI PaymentChannel = "WX_JSAPI"
	ChannelWallet  PaymentChannel = "WALLET"
)

type PaymentStatusType string

const (
	PaymentStatusSuccess PaymentStatusType = "SUCCESS"
)

type RechargeStatusType string

const (
	RechargeStatusCreated RechargeStatusType = "CREATED"
	RechargeStatusPaid    RechargeStatusType = "PAID"
)

type StoreStatusType string

const (
	StoreStatusOpen   StoreStatusType = "OPEN"
	StoreStatusClosed StoreStatusType = "CLOSED"
)
