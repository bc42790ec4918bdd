package repoargs

type RepositoryName string

const (
	TenantRepoName        RepositoryName = "tenant"
	StoreRepoName         RepositoryName = "store"
	CatalogRepoName       RepositoryName = "catalog"
	OrderRepoName         RepositoryName = "order"
	PaymentRepoName       RepositoryName = "payment"
	WalletRepoName        RepositoryName = "wallet"
	RechargeOrderRepoName RepositoryName = "recharge_order"
	MemberRepoName        RepositoryName = "member"
	MemberAddressRepoName RepositoryName = "member_address"
	OrderReviewRepoName   RepositoryName = "order_review"
	MerchantUserRepoName  RepositoryName = "merchant_user"
)
