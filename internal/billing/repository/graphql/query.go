package graphql

const planFields = `
fragment PlanFields on Plan {
  id
  name
  description
  price
  currency
  interval
  features
  isActive
}`

const subscriptionFields = `
fragment SubscriptionFields on Subscription {
  id
  planId
  plan { ...PlanFields }
  status
  startDate
  endDate
  cancelledAt
  createdAt
}` + planFields

const listQuery = `
query GetSubscriptions($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  subscriptions(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...SubscriptionFields }
    totalCount
  }
}` + subscriptionFields

const detailQuery = `
query GetSubscription($organizationId: ID!, $id: ID!) {
  subscription(organizationId: $organizationId, id: $id) { ...SubscriptionFields }
}` + subscriptionFields

const createMutation = `
mutation CreateSubscription($input: CreateSubscriptionInput!) {
  createSubscription(input: $input) { ...SubscriptionFields }
}` + subscriptionFields

const cancelMutation = `
mutation CancelSubscription($organizationId: ID!, $id: ID!) {
  cancelSubscription(organizationId: $organizationId, id: $id) { ...SubscriptionFields }
}` + subscriptionFields

const plansQuery = `
query GetPlans {
  plans { ...PlanFields }
}` + planFields
