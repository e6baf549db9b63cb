// Package mocks provides shared test doubles for the task store and the task
// service.
//
// MockTaskService uses function fields with canned defaults, which suits
// handler tests that only care about one call:
//
//	svc := &mocks.MockTaskService{
//	    GetTaskFn: func(ctx context.Context, id uuid.UUID) (domain.TaskView, error) {
//	        return domain.TaskView{ID: id, Title: "Buy milk"}, nil
//	    },
//	}
//
// TestifyMockTaskStore embeds mock.Mock for service tests that assert which
// repository calls were, or were not, made.
package mocks
