package friend

import (
	"weav-api/core/database"
	"weav-api/core/queue"
	"weav-api/modules/friend/controller"
	"weav-api/modules/friend/repository"
	"weav-api/modules/friend/service"
)

// Init builds the friend handlers. Routes live under /api/users and are
// registered by the user module.
func Init(db database.IDatabase, q queue.Enqueuer) *controller.FriendController {
	repo := repository.NewFriendRepository(db)
	svc := service.NewFriendService(repo, q)
	return controller.NewFriendController(svc)
}
