package graphql

const ticketFields = `
fragment ISPTicketFields on ISPTicket {
  id
  title
  description
  status
  priority
  category
  customerId
  customer { id fullName username phone }
  assignedTo
  attachments { objectName fileName contentType size }
  dueDate
  createdAt
  updatedAt
}`

const listQuery = `
query GetISPTickets($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  ispTickets(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...ISPTicketFields }
    totalCount
  }
}` + ticketFields

const detailQuery = `
query GetISPTicket($organizationId: ID!, $id: ID!) {
  ispTicket(organizationId: $organizationId, id: $id) { ...ISPTicketFields }
}` + ticketFields

const createMutation = `
mutation CreateISPTicket($input: CreateISPTicketInput!) {
  createISPTicket(input: $input) { ...ISPTicketFields }
}` + ticketFields

const updateMutation = `
mutation UpdateISPTicket($id: ID!, $input: UpdateISPTicketInput!) {
  updateISPTicket(id: $id, input: $input) { ...ISPTicketFields }
}` + ticketFields

const deleteMutation = `
mutation DeleteISPTicket($organizationId: ID!, $id: ID!) {
  deleteISPTicket(organizationId: $organizationId, id: $id)
}`
