package component

// ShopRequest asks the shop system to buy the named upgrade on the next
// update.
type ShopRequest struct {
	Upgrade string
}

var ShopRequestComponent = NewComponent[ShopRequest]()
