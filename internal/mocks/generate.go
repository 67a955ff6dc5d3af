package mocks

//go:generate mockgen -source=../repository/account_repository.go -destination=account_repository.go -package=mocks
//go:generate mockgen -source=../repository/profile_repository.go -destination=profile_repository.go -package=mocks
//go:generate mockgen -source=../repository/match_repository.go -destination=match_repository.go -package=mocks
//go:generate mockgen -source=../repository/prompt_repository.go -destination=prompt_repository.go -package=mocks
//go:generate mockgen -source=../infrastructure/cache/cache.go -destination=cache.go -package=mocks
//go:generate mockgen -source=../infrastructure/storage/storage.go -destination=storage.go -package=mocks
//go:generate mockgen -source=../usecase/account/account_usecase.go -destination=account_usecase.go -package=mocks
