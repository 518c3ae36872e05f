package terraswap

type RouterInstantiateMsg struct {
	TerraswapFactory string `json:"terraswap_factory"`
}
