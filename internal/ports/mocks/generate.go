package mocks

//go:generate mockgen -source=../order_store.go -destination=mock_order_store.go -package=mocks
//go:generate mockgen -source=../caches.go -destination=mock_caches.go -package=mocks
//go:generate mockgen -source=../sold_checker.go -destination=mock_sold_checker.go -package=mocks
//go:generate mockgen -source=../cart_service.go -destination=mock_cart_service.go -package=mocks
//go:generate mockgen -source=../confirmation_validator.go -destination=mock_confirmation_validator.go -package=mocks
