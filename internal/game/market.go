package game

// Resource is a tradeable spot-market good.
type Resource string

const (
	ResourceWood  Resource = "wood"
	ResourceStone Resource = "stone"
)

var AllResources = []Resource{ResourceWood, ResourceStone}

const (
	sellSpread = 0.9
	buySpread  = 1.25
)

// marketBase holds the fixed unit prices the slippage curves scale from.
var marketBase = map[Resource]int{
	ResourceWood:  10,
	ResourceStone: 12,
}

// QuoteSell prices a sale of qty units. Large sales get progressively worse
// per-unit pricing, bounded at 50% of nominal.
func QuoteSell(res Resource, qty int) int {
	base := marketBase[res]
	slip := max(0.5, 1-min(float64(qty)/50000.0, 0.5))
	return int(float64(base) * sellSpread * slip * float64(qty))
}

// QuoteBuy prices a purchase of qty units. Large purchases get progressively
// more expensive, capped at 3x nominal.
func QuoteBuy(res Resource, qty int) int {
	base := marketBase[res]
	slip := 1 + min(float64(qty)/20000.0, 2.0)
	return int(float64(base) * buySpread * slip * float64(qty))
}

func (st *State) resourceAmount(res Resource) int {
	switch res {
	case ResourceWood:
		return st.Wood
	case ResourceStone:
		return st.Stone
	}
	return 0
}

func (st *State) addResource(res Resource, delta int) {
	switch res {
	case ResourceWood:
		st.Wood += delta
	case ResourceStone:
		st.Stone += delta
	}
}

// SellResource debits qty units of res and credits the quoted price.
// Returns the money received.
func (s *Service) SellResource(st *State, res Resource, qty int) (int, error) {
	if _, ok := marketBase[res]; !ok {
		return 0, ErrUnknownResource
	}
	if qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	if st.resourceAmount(res) < qty {
		return 0, ErrInsufficientResources
	}
	price := QuoteSell(res, qty)
	st.addResource(res, -qty)
	st.Money += price
	st.Normalize()
	return price, nil
}

// BuyResource debits the quoted price and credits qty units of res.
// Returns the money spent.
func (s *Service) BuyResource(st *State, res Resource, qty int) (int, error) {
	if _, ok := marketBase[res]; !ok {
		return 0, ErrUnknownResource
	}
	if qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	price := QuoteBuy(res, qty)
	if st.Money < price {
		return 0, ErrInsufficientFunds
	}
	st.Money -= price
	st.addResource(res, qty)
	st.Normalize()
	return price, nil
}
