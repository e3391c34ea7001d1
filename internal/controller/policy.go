package controller

// Mutation 會改變成員狀態的操作
type Mutation string

const (
	MutationJoin  Mutation = "join"
	MutationLeave Mutation = "leave"
)

type reconcileStrategy int

const (
	// 直接採用 mutation 回應中的活動
	applyResponse reconcileStrategy = iota
	// 忽略 mutation 回應，另外讀取一次活動
	refetch
)

type mutationPolicy struct {
	requiresCredential bool
	reconcile          reconcileStrategy
}

// mutationPolicies 兩個端點的回應格式不同，因此各自的同步方式也不同
var mutationPolicies = map[Mutation]mutationPolicy{
	MutationJoin:  {requiresCredential: true, reconcile: applyResponse},
	MutationLeave: {requiresCredential: false, reconcile: refetch},
}
