package graphql

const inventoryFields = `
fragment ISPInventoryFields on ISPInventory {
  id
  name
  sku
  category
  quantity
  unitPrice
  location
  supplier
  description
  createdAt
  updatedAt
}`

const listQuery = `
query GetISPInventories($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  ispInventories(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...ISPInventoryFields }
    totalCount
  }
}` + inventoryFields

const detailQuery = `
query GetISPInventory($organizationId: ID!, $id: ID!) {
  ispInventory(organizationId: $organizationId, id: $id) { ...ISPInventoryFields }
}` + inventoryFields

const createMutation = `
mutation CreateISPInventory($input: CreateISPInventoryInput!) {
  createISPInventory(input: $input) { ...ISPInventoryFields }
}` + inventoryFields

const updateMutation = `
mutation UpdateISPInventory($id: ID!, $input: UpdateISPInventoryInput!) {
  updateISPInventory(id: $id, input: $input) { ...ISPInventoryFields }
}` + inventoryFields

const deleteMutation = `
mutation DeleteISPInventory($organizationId: ID!, $id: ID!) {
  deleteISPInventory(organizationId: $organizationId, id: $id)
}`
